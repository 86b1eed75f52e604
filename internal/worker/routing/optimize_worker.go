package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/worker"
)

const (
	maxBatchSize    = 10
	emptyQueueSleep = 100 * time.Millisecond
)

// JobRunner executes one optimization job end to end.
type JobRunner interface {
	RunJob(ctx context.Context, method string, start time.Time) (*domain.OptimizationResult, *domain.Comparison, *domain.RouteMetrics, error)
}

// OptimizeWorker consumes optimization jobs from the request stream and
// publishes finished results to the done stream.
type OptimizeWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	runner       JobRunner
	consumerName string
}

func NewOptimizeWorker(
	streamRepo repository.StreamRepository,
	runner JobRunner,
	consumerGroup string,
	logger *zap.Logger,
) *OptimizeWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &OptimizeWorker{
		BaseWorker:   worker.NewBaseWorker("route-optimize", consumerGroup, logger),
		streamRepo:   streamRepo,
		runner:       runner,
		consumerName: consumerName,
	}
}

func (w *OptimizeWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting OptimizeWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteOptimize, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and handles a batch of jobs. Malformed messages are
// acknowledged and skipped so they never wedge the stream.
func (w *OptimizeWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRouteOptimize,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	processedIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			_ = w.streamRepo.AckMessage(ctx, domain.StreamRouteOptimize, w.ConsumerGroup(), msg.ID)
			continue
		}

		w.handleJob(ctx, event)
		processedIDs = append(processedIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRouteOptimize, w.ConsumerGroup(), processedIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Not fatal, the messages will be redelivered.
	}

	return len(messages), nil
}

// handleJob runs one job and publishes a done event, failed or not.
func (w *OptimizeWorker) handleJob(ctx context.Context, event *domain.RouteOptimizeEvent) {
	logger := w.Logger()

	var start time.Time
	if event.StartTime != nil {
		start = *event.StartTime
	}

	done := domain.RouteDoneEvent{JobID: event.JobID}

	result, comparison, metrics, err := w.runner.RunJob(ctx, event.Method, start)
	if err != nil {
		logger.Error("Optimization job failed",
			zap.String("job_id", event.JobID.String()),
			zap.String("method", event.Method),
			zap.Error(err))
		done.Error = err.Error()
	} else {
		done.Result = result
		done.Comparison = comparison
		done.Metrics = metrics

		logger.Info("Optimization job finished",
			zap.String("job_id", event.JobID.String()),
			zap.String("method", event.Method),
			zap.Float64("distance_km", result.DistanceKm))
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamRouteDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("job_id", event.JobID.String()),
			zap.Error(err))
	}
}

func (w *OptimizeWorker) parseMessage(msg domain.StreamMessage) (*domain.RouteOptimizeEvent, error) {
	var event domain.RouteOptimizeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Method == "" {
		return nil, fmt.Errorf("event has no method")
	}
	return &event, nil
}
