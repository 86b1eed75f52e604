package routing_test

import (
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/routing"
)

// unitKm is the great-circle length of 0.01 degrees of latitude, the grid
// unit used by the geometric fixtures below.
const unitKm = 1.111950

// fiveStopMatrix is a small hand-checked instance. Nearest-neighbor from 0
// yields [0 1 3 4 2 0] with distance 85, which is also a global optimum,
// so 2-opt leaves it untouched.
func fiveStopMatrix() routing.Matrix {
	return routing.Matrix{
		{0, 10, 15, 20, 25},
		{10, 0, 35, 25, 30},
		{15, 35, 0, 30, 20},
		{20, 25, 30, 0, 15},
		{25, 30, 20, 15, 0},
	}
}

// squareStops form a 0.01-degree square with the depot at one corner.
// The perimeter tour is optimal; any tour using a diagonal is worse.
func squareStops() []domain.Stop {
	return []domain.Stop{
		{ID: 0, Name: "Depot", Lat: 0, Lon: 0, IsDepot: true},
		{ID: 1, Name: "A", Lat: 0, Lon: 0.01},
		{ID: 2, Name: "B", Lat: 0.01, Lon: 0.01},
		{ID: 3, Name: "C", Lat: 0.01, Lon: 0},
	}
}

// crossingStops is built so that the greedy construction paints itself
// into a corner: nearest-neighbor produces [0 1 2 4 3 0], whose edges
// (2,4) and (3,0) cross. One reversal of positions 3..4 uncrosses them.
func crossingStops() []domain.Stop {
	return []domain.Stop{
		{ID: 0, Name: "Depot", Lat: 0, Lon: 0, IsDepot: true},
		{ID: 1, Name: "S1", Lat: 0.01, Lon: 0},
		{ID: 2, Name: "S2", Lat: 0.02, Lon: 0},
		{ID: 3, Name: "S3", Lat: 0.02, Lon: 0.03},
		{ID: 4, Name: "S4", Lat: 0.005, Lon: 0.015},
	}
}

// scatterStops is a larger fixed instance for convergence and agreement
// tests. Coordinates are arbitrary but deterministic.
func scatterStops() []domain.Stop {
	return []domain.Stop{
		{ID: 0, Name: "Depot", Lat: 17.4485, Lon: 78.3908, IsDepot: true},
		{ID: 1, Name: "Madhapur", Lat: 17.4400, Lon: 78.3811},
		{ID: 2, Name: "Gachibowli", Lat: 17.4239, Lon: 78.3460},
		{ID: 3, Name: "Kondapur", Lat: 17.4609, Lon: 78.3671},
		{ID: 4, Name: "Kukatpally", Lat: 17.4950, Lon: 78.3595},
		{ID: 5, Name: "Begumpet", Lat: 17.4440, Lon: 78.4661},
		{ID: 6, Name: "Uppal", Lat: 17.4058, Lon: 78.5591},
		{ID: 7, Name: "Charminar", Lat: 17.3616, Lon: 78.4747},
		{ID: 8, Name: "Secunderabad", Lat: 17.4399, Lon: 78.4983},
	}
}

// improvementEpsilon mirrors the acceptance threshold of routing.TwoOpt.
// Recomputing a reversed tour sums the same edges in a different order, so
// a candidate can come out a few ulps under the incumbent without being a
// real improvement.
const improvementEpsilon = 1e-10

// naiveTwoOpt is the reference improver: it applies the same fixed scan
// and first-improvement rule as routing.TwoOpt but judges every candidate
// by rebuilding the tour and recomputing its full distance. Tests assert
// both implementations make identical accept decisions.
func naiveTwoOpt(initial domain.Tour, m routing.Matrix, maxPasses int) (domain.Tour, float64, int, int) {
	best := initial.Clone()
	bestDist := routing.TourDistance(best, m)

	passes := 0
	swaps := 0
	size := len(best)

	improved := true
	for improved && passes < maxPasses {
		improved = false
		passes++

		for i := 1; i < size-2; i++ {
			for k := i + 1; k < size-1; k++ {
				candidate := best.Clone()
				for a, b := i, k; a < b; a, b = a+1, b-1 {
					candidate[a], candidate[b] = candidate[b], candidate[a]
				}

				if d := routing.TourDistance(candidate, m); d < bestDist-improvementEpsilon {
					best = candidate
					bestDist = d
					improved = true
					swaps++
				}
			}
		}
	}

	return best, bestDist, passes, swaps
}
