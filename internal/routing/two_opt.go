package routing

import (
	"github.com/route-optimizer/internal/domain"
)

// DefaultMaxPasses bounds the outer improvement loop. Convergence is
// expected far earlier; the cap only guarantees termination.
const DefaultMaxPasses = 1000

// improvementEpsilon is the threshold below which a candidate delta counts
// as an improvement. Reversing the entire interior of a tour traverses it
// backward, so on a symmetric matrix its true delta is exactly zero, but
// the four-edge evaluation leaves rounding noise on haversine weights. A
// plain `delta < 0` accepts that noise and the tour flips between itself
// and its mirror until the pass cap.
const improvementEpsilon = 1e-10

// Strategy selects how a 2-opt pass accepts moves.
type Strategy int

const (
	// FirstImprovement applies the first strictly improving move found
	// and keeps scanning the same pass on the updated tour. This is the
	// canonical, reproducible behavior.
	FirstImprovement Strategy = iota

	// BestImprovement scans the whole pass and applies only the single
	// best move. Offered as an explicitly named alternative; never the
	// silent default.
	BestImprovement
)

// TwoOptOptions tunes a TwoOpt run. The zero value means first-improvement
// with the default pass cap.
type TwoOptOptions struct {
	MaxPasses int
	Strategy  Strategy
}

// TwoOpt improves a closed tour by repeatedly reversing sub-segments that
// uncross a pair of edges, until a full pass accepts no move or the pass
// cap is reached. The input tour is never mutated.
//
// A move on positions (i,k) removes edges (tour[i-1],tour[i]) and
// (tour[k],tour[k+1]) and adds (tour[i-1],tour[k]) and (tour[i],tour[k+1]),
// so a candidate is judged in O(1) by the delta of those four edges:
//
//	Δ = m[a][c] + m[b][d] - m[a][b] - m[c][d]
//
// A move is accepted when Δ < -improvementEpsilon. The reversed interior
// edges keep their weights in a symmetric matrix, so this makes the same
// decisions as recomputing the full tour distance per candidate; the
// epsilon keeps rounding noise from counting as an improvement.
//
// Scan order is fixed (outer i ascending, inner k ascending) and acceptance
// is strict, so the result is fully deterministic for a given input.
func TwoOpt(initial domain.Tour, m Matrix, opts TwoOptOptions) (domain.Tour, float64, domain.TwoOptStats, error) {
	n := m.Len()
	if n == 0 {
		return nil, 0, domain.TwoOptStats{}, ErrEmptyStopSet
	}
	if n < 2 {
		return nil, 0, domain.TwoOptStats{}, ErrTooFewStops
	}
	if len(initial) < 2 {
		return nil, 0, domain.TwoOptStats{}, ErrInvalidTour
	}
	if err := ValidateTour(initial, n, initial[0]); err != nil {
		return nil, 0, domain.TwoOptStats{}, err
	}

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	best := initial.Clone()
	initialDist := TourDistance(best, m)

	stats := domain.TwoOptStats{InitialDistanceKm: initialDist}
	size := len(best)

	improved := true
	for improved && stats.Iterations < maxPasses {
		improved = false
		stats.Iterations++

		switch opts.Strategy {
		case BestImprovement:
			if bestImprovementPass(best, m, size) {
				improved = true
				stats.TotalImprovements++
			}
		default:
			// First-improvement: accept immediately and continue the
			// scan from the next (i,k) pair on the updated tour.
			for i := 1; i < size-2; i++ {
				for k := i + 1; k < size-1; k++ {
					a, b := best[i-1], best[i]
					c, d := best[k], best[k+1]

					delta := m[a][c] + m[b][d] - m[a][b] - m[c][d]
					if delta < -improvementEpsilon {
						reverseSegment(best, i, k)
						improved = true
						stats.TotalImprovements++
					}
				}
			}
		}
	}

	// Loop left with an improving pass pending means the cap cut us off.
	stats.Capped = improved

	finalDist := TourDistance(best, m)
	stats.OptimizedDistanceKm = finalDist
	stats.ImprovementKm = initialDist - finalDist
	if initialDist > 0 {
		stats.ImprovementPct = (initialDist - finalDist) / initialDist * 100
	}

	return best, finalDist, stats, nil
}

// bestImprovementPass applies the single most improving move of a full
// scan, if any. Returns whether a move was applied.
func bestImprovementPass(tour domain.Tour, m Matrix, size int) bool {
	bestDelta := -improvementEpsilon
	bestI, bestK := -1, -1

	for i := 1; i < size-2; i++ {
		for k := i + 1; k < size-1; k++ {
			a, b := tour[i-1], tour[i]
			c, d := tour[k], tour[k+1]

			delta := m[a][c] + m[b][d] - m[a][b] - m[c][d]
			if delta < bestDelta {
				bestDelta = delta
				bestI, bestK = i, k
			}
		}
	}

	if bestI < 0 {
		return false
	}
	reverseSegment(tour, bestI, bestK)
	return true
}

// reverseSegment reverses tour[i..k] in place.
func reverseSegment(tour domain.Tour, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
