// Package routing implements the route construction and improvement engine:
// pairwise distance matrices, the nearest-neighbor construction heuristic,
// 2-opt local search, naive/random baselines, a comparison harness and
// derived route metrics.
//
// Everything in this package is pure and synchronous. Matrices and stop
// slices are treated as read-only, tours are value objects, and two runs
// over identical input produce bit-identical results.
package routing

import (
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/pkg/utils"
)

// Matrix is a dense symmetric distance matrix in kilometers.
// Invariants: zero diagonal, m[i][j] == m[j][i], entries non-negative.
type Matrix [][]float64

// Len returns the number of stops the matrix covers.
func (m Matrix) Len() int { return len(m) }

// BuildDistanceMatrix computes great-circle distances for every ordered
// pair of stops. The diagonal stays exactly zero; symmetry falls out of
// the distance function. O(N²) distance evaluations.
func BuildDistanceMatrix(stops []domain.Stop) Matrix {
	n := len(stops)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := utils.HaversineDistance(stops[i].Lat, stops[i].Lon, stops[j].Lat, stops[j].Lon)
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}

// TourDistance sums the edge weights along a tour. Pure, O(len(tour)).
func TourDistance(tour domain.Tour, m Matrix) float64 {
	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += m[tour[i]][tour[i+1]]
	}
	return total
}

// ValidateTour checks that tour is a closed cycle over all n stops:
// first == last == depot, every other index appears exactly once.
func ValidateTour(tour domain.Tour, n, depot int) error {
	if len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != depot || tour[len(tour)-1] != depot {
		return ErrInvalidTour
	}

	seen := make([]bool, n)
	for _, idx := range tour[:len(tour)-1] {
		if idx < 0 || idx >= n {
			return ErrInvalidTour
		}
		if seen[idx] {
			return ErrInvalidTour
		}
		seen[idx] = true
	}
	return nil
}
