package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// StreamRepository wraps Redis Streams used for background optimization jobs.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to maxCount pending messages without blocking.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// AckMessages acknowledges a batch of processed messages.
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// PublishToStream publishes a JSON-serialized message to a stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
