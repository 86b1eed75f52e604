package routing

import (
	"math"

	"github.com/route-optimizer/internal/domain"
)

// NearestNeighbor builds an initial closed tour greedily: starting at the
// depot it always steps to the closest unvisited stop, then returns home.
//
// Ties are broken by the first (lowest) index encountered; together with
// the fixed scan order this makes the construction fully deterministic.
// O(N²).
func NearestNeighbor(m Matrix, start int) (domain.Tour, float64, error) {
	n := m.Len()
	if n == 0 {
		return nil, 0, ErrEmptyStopSet
	}
	if n < 2 {
		return nil, 0, ErrTooFewStops
	}
	if start < 0 || start >= n {
		return nil, 0, ErrDepotOutOfRange
	}

	visited := make([]bool, n)
	tour := make(domain.Tour, 0, n+1)
	tour = append(tour, start)
	visited[start] = true

	current := start
	total := 0.0

	for step := 0; step < n-1; step++ {
		nearest := -1
		nearestDist := math.Inf(1)

		// Strict < keeps the lowest-index winner on equal distances.
		for idx := 0; idx < n; idx++ {
			if visited[idx] {
				continue
			}
			if d := m[current][idx]; d < nearestDist {
				nearestDist = d
				nearest = idx
			}
		}

		tour = append(tour, nearest)
		visited[nearest] = true
		total += nearestDist
		current = nearest
	}

	// Close the cycle back at the depot.
	tour = append(tour, start)
	total += m[current][start]

	return tour, total, nil
}
