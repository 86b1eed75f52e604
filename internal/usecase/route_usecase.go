package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/routing"
	"github.com/route-optimizer/internal/usecase/dto"
)

// RouteUseCase runs the optimization engine over the configured stop set.
// Distance matrices are cached under a fingerprint of the stop set, so a
// changed instance can never read a stale matrix.
type RouteUseCase struct {
	stopRepo  repository.StopRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	routing   config.RoutingConfig
}

func NewRouteUseCase(
	stopRepo repository.StopRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	routingCfg config.RoutingConfig,
) *RouteUseCase {
	return &RouteUseCase{
		stopRepo:  stopRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		routing:   routingCfg,
	}
}

// GetStops returns the stop set with the depot first.
func (uc *RouteUseCase) GetStops(ctx context.Context) (*dto.StopsResponse, error) {
	stops, err := uc.stopRepo.GetStops(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StopDTO, len(stops))
	for i, s := range stops {
		out[i] = dto.ConvertStop(s)
	}

	return &dto.StopsResponse{Stops: out, Total: len(out)}, nil
}

func (uc *RouteUseCase) GetDepot(ctx context.Context) (*dto.StopDTO, error) {
	depot, err := uc.stopRepo.GetDepot(ctx)
	if err != nil {
		return nil, err
	}

	out := dto.ConvertStop(*depot)
	return &out, nil
}

// Optimize runs a single strategy and returns the tour with its distance.
func (uc *RouteUseCase) Optimize(ctx context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizationResultDTO, error) {
	stops, matrix, err := uc.loadMatrix(ctx)
	if err != nil {
		return nil, err
	}

	res, err := routing.Optimize(matrix, 0, req.Method, uc.engineOptions(req.Seed))
	if err != nil {
		return nil, mapRoutingError(err)
	}

	uc.logger.Info("Route optimized",
		zap.String("method", req.Method),
		zap.Float64("distance_km", res.DistanceKm),
		zap.Duration("elapsed", res.Elapsed))

	return dto.ConvertOptimizationResult(res, stops), nil
}

// Compare runs the naive baseline, nearest neighbor, and 2-opt over the
// same matrix and reports pairwise savings.
func (uc *RouteUseCase) Compare(ctx context.Context) (*dto.ComparisonDTO, error) {
	stops, matrix, err := uc.loadMatrix(ctx)
	if err != nil {
		return nil, err
	}

	cmp, err := routing.Compare(matrix, 0, uc.engineOptions(0))
	if err != nil {
		return nil, mapRoutingError(err)
	}

	uc.logger.Info("Strategies compared",
		zap.Float64("naive_km", cmp.Naive.DistanceKm),
		zap.Float64("nn_km", cmp.NearestNeighbor.DistanceKm),
		zap.Float64("optimized_km", cmp.Optimized.DistanceKm))

	return dto.ConvertComparison(cmp, stops), nil
}

// Metrics optimizes with the requested method and derives time, fuel and
// emission figures for the resulting tour. An explicit tour in the
// request is priced as-is instead of optimizing first.
func (uc *RouteUseCase) Metrics(ctx context.Context, req dto.RouteMetricsRequest) (*dto.RouteMetricsDTO, error) {
	start, err := dto.ParseClock(req.StartTime)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"start_time": req.StartTime,
		})
	}

	_, matrix, err := uc.loadMatrix(ctx)
	if err != nil {
		return nil, err
	}

	var (
		method = req.Method
		tour   = domain.Tour(req.Tour)
	)
	switch {
	case len(tour) > 0:
		// A caller-supplied tour must anchor at the depot, not just be
		// some closed permutation.
		if err := routing.ValidateTour(tour, matrix.Len(), 0); err != nil {
			return nil, mapRoutingError(err)
		}
		method = domain.MethodCustom
	default:
		if method == "" {
			method = domain.MethodNearestNeighbor2Opt
		}
		res, err := routing.Optimize(matrix, 0, method, uc.engineOptions(0))
		if err != nil {
			return nil, mapRoutingError(err)
		}
		tour = res.Tour
	}

	metrics, err := routing.DeriveMetrics(tour, matrix, start, routing.MetricsParams{
		BaseSpeedKmph:      uc.routing.BaseSpeedKmph,
		FuelEfficiencyKmpl: uc.routing.FuelEfficiencyKmpl,
		FuelPricePerLiter:  uc.routing.FuelPricePerLiter,
		CO2KgPerLiter:      uc.routing.CO2KgPerLiter,
	})
	if err != nil {
		return nil, mapRoutingError(err)
	}

	return dto.ConvertRouteMetrics(method, tour, metrics), nil
}

// RunJob executes a background optimization job: the requested strategy,
// the full comparison, and derived metrics for the winning tour.
func (uc *RouteUseCase) RunJob(ctx context.Context, method string, start time.Time) (*domain.OptimizationResult, *domain.Comparison, *domain.RouteMetrics, error) {
	if method == "" {
		method = domain.MethodNearestNeighbor2Opt
	}

	_, matrix, err := uc.loadMatrix(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	res, err := routing.Optimize(matrix, 0, method, uc.engineOptions(0))
	if err != nil {
		return nil, nil, nil, mapRoutingError(err)
	}

	cmp, err := routing.Compare(matrix, 0, uc.engineOptions(0))
	if err != nil {
		return nil, nil, nil, mapRoutingError(err)
	}

	metrics, err := routing.DeriveMetrics(res.Tour, matrix, start, routing.MetricsParams{
		BaseSpeedKmph:      uc.routing.BaseSpeedKmph,
		FuelEfficiencyKmpl: uc.routing.FuelEfficiencyKmpl,
		FuelPricePerLiter:  uc.routing.FuelPricePerLiter,
		CO2KgPerLiter:      uc.routing.CO2KgPerLiter,
	})
	if err != nil {
		return nil, nil, nil, mapRoutingError(err)
	}

	return res, cmp, metrics, nil
}

func (uc *RouteUseCase) engineOptions(seed int64) routing.Options {
	opts := routing.Options{
		MaxPasses:  uc.routing.TwoOptMaxPasses,
		RandomSeed: uc.routing.RandomSeed,
	}
	if seed != 0 {
		opts.RandomSeed = seed
	}
	return opts
}

// loadMatrix fetches the stop set and its distance matrix, building and
// caching the matrix on a miss. Cache failures degrade to a rebuild.
func (uc *RouteUseCase) loadMatrix(ctx context.Context) ([]domain.Stop, routing.Matrix, error) {
	stops, err := uc.stopRepo.GetStops(ctx)
	if err != nil {
		return nil, nil, err
	}

	fingerprint := stopSetFingerprint(stops)

	cached, err := uc.cacheRepo.GetMatrix(ctx, fingerprint)
	if err != nil {
		uc.logger.Warn("Matrix cache read failed, rebuilding", zap.Error(err))
	}
	if cached != nil {
		return stops, routing.Matrix(cached), nil
	}

	matrix := routing.BuildDistanceMatrix(stops)

	if err := uc.cacheRepo.SetMatrix(ctx, fingerprint, matrix, uc.cacheTTL); err != nil {
		uc.logger.Warn("Matrix cache write failed", zap.Error(err))
	}

	return stops, matrix, nil
}

// stopSetFingerprint hashes stop identity, coordinates and order. Any
// change to the set yields a new cache key.
func stopSetFingerprint(stops []domain.Stop) string {
	h := sha256.New()
	for _, s := range stops {
		fmt.Fprintf(h, "%d:%s:%s;",
			s.ID,
			strconv.FormatFloat(s.Lat, 'f', -1, 64),
			strconv.FormatFloat(s.Lon, 'f', -1, 64),
		)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// mapRoutingError translates engine sentinels into transport-level errors.
func mapRoutingError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, routing.ErrEmptyStopSet):
		return errors.ErrEmptyStopSet
	case stderrors.Is(err, routing.ErrTooFewStops):
		return errors.ErrTooFewStops
	case stderrors.Is(err, routing.ErrDepotOutOfRange):
		return errors.ErrDepotOutOfRange
	case stderrors.Is(err, routing.ErrUnknownMethod):
		return errors.ErrUnknownMethod
	case stderrors.Is(err, routing.ErrInvalidTour):
		return errors.ErrInvalidTour
	}
	return err
}
