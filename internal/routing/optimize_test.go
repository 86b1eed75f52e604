package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/routing"
)

func TestNaiveTour(t *testing.T) {
	assert.Equal(t, domain.Tour{0, 1, 2, 3, 4, 0}, routing.NaiveTour(5, 0))
	assert.Equal(t, domain.Tour{2, 0, 1, 3, 4, 2}, routing.NaiveTour(5, 2))
}

func TestRandomTour(t *testing.T) {
	t.Run("seeded shuffle is reproducible", func(t *testing.T) {
		a := routing.RandomTour(10, 0, 42)
		b := routing.RandomTour(10, 0, 42)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a := routing.RandomTour(10, 0, 42)
		b := routing.RandomTour(10, 0, 43)
		assert.NotEqual(t, a, b)
	})

	t.Run("stays a closed permutation", func(t *testing.T) {
		tour := routing.RandomTour(10, 3, 42)
		assert.NoError(t, routing.ValidateTour(tour, 10, 3))
	})
}

func TestOptimize(t *testing.T) {
	m := fiveStopMatrix()

	t.Run("naive", func(t *testing.T) {
		res, err := routing.Optimize(m, 0, domain.MethodNaive, routing.Options{})
		require.NoError(t, err)

		assert.Equal(t, domain.Tour{0, 1, 2, 3, 4, 0}, res.Tour)
		assert.Equal(t, 115.0, res.DistanceKm)
		assert.Equal(t, "Sequential (Naive)", res.Algorithm)
		assert.Nil(t, res.Stats)
	})

	t.Run("random", func(t *testing.T) {
		res, err := routing.Optimize(m, 0, domain.MethodRandom, routing.Options{})
		require.NoError(t, err)

		assert.NoError(t, routing.ValidateTour(res.Tour, m.Len(), 0))
		assert.Equal(t, routing.TourDistance(res.Tour, m), res.DistanceKm)

		again, err := routing.Optimize(m, 0, domain.MethodRandom, routing.Options{})
		require.NoError(t, err)
		assert.Equal(t, res.Tour, again.Tour, "default seed is fixed")
	})

	t.Run("nearest_neighbor", func(t *testing.T) {
		res, err := routing.Optimize(m, 0, domain.MethodNearestNeighbor, routing.Options{})
		require.NoError(t, err)

		assert.Equal(t, domain.Tour{0, 1, 3, 4, 2, 0}, res.Tour)
		assert.Equal(t, 85.0, res.DistanceKm)
		assert.Nil(t, res.Stats)
	})

	t.Run("nearest_neighbor_2opt", func(t *testing.T) {
		res, err := routing.Optimize(m, 0, domain.MethodNearestNeighbor2Opt, routing.Options{})
		require.NoError(t, err)

		require.NotNil(t, res.Stats)
		assert.Equal(t, res.DistanceKm, res.Stats.OptimizedDistanceKm)
		assert.LessOrEqual(t, res.DistanceKm, res.Stats.InitialDistanceKm)
		assert.Equal(t, "Nearest Neighbor + 2-Opt", res.Algorithm)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := routing.Optimize(m, 0, "simulated_annealing", routing.Options{})
		assert.ErrorIs(t, err, routing.ErrUnknownMethod)
	})

	t.Run("precondition violations", func(t *testing.T) {
		_, err := routing.Optimize(routing.Matrix{}, 0, domain.MethodNaive, routing.Options{})
		assert.ErrorIs(t, err, routing.ErrEmptyStopSet)

		_, err = routing.Optimize(routing.Matrix{{0}}, 0, domain.MethodNaive, routing.Options{})
		assert.ErrorIs(t, err, routing.ErrTooFewStops)

		_, err = routing.Optimize(m, 9, domain.MethodNaive, routing.Options{})
		assert.ErrorIs(t, err, routing.ErrDepotOutOfRange)
	})
}

func TestCompare(t *testing.T) {
	m := routing.BuildDistanceMatrix(crossingStops())

	cmp, err := routing.Compare(m, 0, routing.Options{})
	require.NoError(t, err)

	t.Run("runs all three strategies", func(t *testing.T) {
		require.NotNil(t, cmp.Naive)
		require.NotNil(t, cmp.NearestNeighbor)
		require.NotNil(t, cmp.Optimized)

		assert.Equal(t, domain.MethodNaive, cmp.Naive.Method)
		assert.Equal(t, domain.MethodNearestNeighbor, cmp.NearestNeighbor.Method)
		assert.Equal(t, domain.MethodNearestNeighbor2Opt, cmp.Optimized.Method)
	})

	t.Run("2-opt never worsens its seed", func(t *testing.T) {
		assert.LessOrEqual(t, cmp.Optimized.DistanceKm, cmp.NearestNeighbor.DistanceKm)
	})

	t.Run("savings are consistent", func(t *testing.T) {
		assert.InDelta(t,
			cmp.Naive.DistanceKm-cmp.NearestNeighbor.DistanceKm,
			cmp.NNVsNaive.KmSaved, 1e-9)
		assert.InDelta(t,
			(cmp.Naive.DistanceKm-cmp.Optimized.DistanceKm)/cmp.Naive.DistanceKm*100,
			cmp.OptVsNaive.Percent, 1e-9)
		assert.GreaterOrEqual(t, cmp.OptVsNN.KmSaved, 0.0)
	})

	t.Run("deterministic", func(t *testing.T) {
		again, err := routing.Compare(m, 0, routing.Options{})
		require.NoError(t, err)

		assert.Equal(t, cmp.Naive.Tour, again.Naive.Tour)
		assert.Equal(t, cmp.NearestNeighbor.Tour, again.NearestNeighbor.Tour)
		assert.Equal(t, cmp.Optimized.Tour, again.Optimized.Tour)
		assert.Equal(t, cmp.Optimized.DistanceKm, again.Optimized.DistanceKm)
	})
}
