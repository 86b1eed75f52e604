package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/usecase/dto"
)

// RouteJobUseCase enqueues optimization jobs for the background worker.
type RouteJobUseCase struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewRouteJobUseCase(streamRepo repository.StreamRepository, logger *zap.Logger) *RouteJobUseCase {
	return &RouteJobUseCase{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Enqueue publishes a job to the optimization stream and returns its ID.
// The worker publishes the finished result to the done stream.
func (uc *RouteJobUseCase) Enqueue(ctx context.Context, req dto.CreateRouteJobRequest) (*dto.CreateRouteJobResponse, error) {
	start, err := dto.ParseClock(req.StartTime)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"start_time": req.StartTime,
		})
	}

	event := domain.RouteOptimizeEvent{
		JobID:  uuid.New(),
		Method: req.Method,
	}
	if !start.IsZero() {
		event.StartTime = &start
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamRouteOptimize, event); err != nil {
		uc.logger.Error("Failed to enqueue optimization job",
			zap.String("job_id", event.JobID.String()),
			zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("Optimization job enqueued",
		zap.String("job_id", event.JobID.String()),
		zap.String("method", req.Method))

	return &dto.CreateRouteJobResponse{
		JobID:  event.JobID.String(),
		Status: "queued",
	}, nil
}
