package routing

import (
	"fmt"
	"time"

	"github.com/route-optimizer/internal/domain"
)

// Options tunes a single engine invocation. The zero value selects the
// canonical defaults: first-improvement 2-opt, pass cap 1000, seed 42.
type Options struct {
	MaxPasses  int
	RandomSeed int64
	Strategy   Strategy
}

func (o Options) randomSeed() int64 {
	if o.RandomSeed == 0 {
		return DefaultRandomSeed
	}
	return o.RandomSeed
}

func algorithmLabel(method string) string {
	switch method {
	case domain.MethodNaive:
		return "Sequential (Naive)"
	case domain.MethodRandom:
		return "Random"
	case domain.MethodNearestNeighbor:
		return "Nearest Neighbor"
	case domain.MethodNearestNeighbor2Opt:
		return "Nearest Neighbor + 2-Opt"
	}
	return method
}

// Optimize runs one strategy over a prebuilt matrix and returns the tour,
// its distance, timing, and 2-opt statistics when applicable.
func Optimize(m Matrix, depot int, method string, opts Options) (*domain.OptimizationResult, error) {
	n := m.Len()
	if n == 0 {
		return nil, ErrEmptyStopSet
	}
	if n < 2 {
		return nil, ErrTooFewStops
	}
	if depot < 0 || depot >= n {
		return nil, ErrDepotOutOfRange
	}

	started := time.Now()

	var (
		tour  domain.Tour
		dist  float64
		stats *domain.TwoOptStats
	)

	switch method {
	case domain.MethodNaive:
		tour = NaiveTour(n, depot)
		dist = TourDistance(tour, m)

	case domain.MethodRandom:
		tour = RandomTour(n, depot, opts.randomSeed())
		dist = TourDistance(tour, m)

	case domain.MethodNearestNeighbor:
		var err error
		tour, dist, err = NearestNeighbor(m, depot)
		if err != nil {
			return nil, err
		}

	case domain.MethodNearestNeighbor2Opt:
		seed, _, err := NearestNeighbor(m, depot)
		if err != nil {
			return nil, err
		}

		var s domain.TwoOptStats
		tour, dist, s, err = TwoOpt(seed, m, TwoOptOptions{
			MaxPasses: opts.MaxPasses,
			Strategy:  opts.Strategy,
		})
		if err != nil {
			return nil, err
		}
		stats = &s

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	return &domain.OptimizationResult{
		Method:     method,
		Algorithm:  algorithmLabel(method),
		Tour:       tour,
		DistanceKm: dist,
		Elapsed:    time.Since(started),
		Stats:      stats,
	}, nil
}

// Compare runs the naive baseline, nearest-neighbor alone, and
// nearest-neighbor seeded 2-opt over the same matrix and derives pairwise
// savings between the three.
func Compare(m Matrix, depot int, opts Options) (*domain.Comparison, error) {
	naive, err := Optimize(m, depot, domain.MethodNaive, opts)
	if err != nil {
		return nil, err
	}

	nn, err := Optimize(m, depot, domain.MethodNearestNeighbor, opts)
	if err != nil {
		return nil, err
	}

	optimized, err := Optimize(m, depot, domain.MethodNearestNeighbor2Opt, opts)
	if err != nil {
		return nil, err
	}

	return &domain.Comparison{
		Naive:           naive,
		NearestNeighbor: nn,
		Optimized:       optimized,
		NNVsNaive:       savings(naive.DistanceKm, nn.DistanceKm),
		OptVsNaive:      savings(naive.DistanceKm, optimized.DistanceKm),
		OptVsNN:         savings(nn.DistanceKm, optimized.DistanceKm),
	}, nil
}

// savings reports how much b saves relative to a. A zero-distance
// baseline cannot occur for two distinct stops; guarded anyway.
func savings(a, b float64) domain.Savings {
	s := domain.Savings{KmSaved: a - b}
	if a > 0 {
		s.Percent = (a - b) / a * 100
	}
	return s
}
