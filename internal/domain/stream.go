package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (must match the publishing side).
const (
	StreamRouteOptimize = "stream:routes:optimize"
	StreamRouteDone     = "stream:routes:done"
)

// RouteOptimizeEvent is an incoming background optimization job.
type RouteOptimizeEvent struct {
	JobID     uuid.UUID  `json:"job_id"`
	Method    string     `json:"method"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

// RouteDoneEvent carries a finished job back to the publisher. Exactly one
// of Result/Comparison is set depending on the requested method; Error is
// set when the job failed.
type RouteDoneEvent struct {
	JobID      uuid.UUID           `json:"job_id"`
	Result     *OptimizationResult `json:"result,omitempty"`
	Comparison *Comparison         `json:"comparison,omitempty"`
	Metrics    *RouteMetrics       `json:"metrics,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// StreamMessage is a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
