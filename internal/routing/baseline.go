package routing

import (
	"math/rand"

	"github.com/route-optimizer/internal/domain"
)

// DefaultRandomSeed keeps the random baseline reproducible across
// comparison runs.
const DefaultRandomSeed int64 = 42

// NaiveTour visits stops in input order: depot, 1, 2, ..., depot. A fixed,
// non-adaptive ordering used purely as a no-optimization baseline.
func NaiveTour(n, depot int) domain.Tour {
	tour := make(domain.Tour, 0, n+1)
	tour = append(tour, depot)
	for i := 0; i < n; i++ {
		if i != depot {
			tour = append(tour, i)
		}
	}
	tour = append(tour, depot)
	return tour
}

// RandomTour permutes the non-depot stops with a seeded shuffle. The same
// seed always yields the same tour.
func RandomTour(n, depot int, seed int64) domain.Tour {
	others := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != depot {
			others = append(others, i)
		}
	}

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	tour := make(domain.Tour, 0, n+1)
	tour = append(tour, depot)
	tour = append(tour, others...)
	tour = append(tour, depot)
	return tour
}
