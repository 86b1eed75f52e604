package repository

import (
	"context"
	"time"
)

// CacheRepository is the explicit memoization layer in front of the
// distance-matrix builder. Matrices are stored under a fingerprint of the
// stop set, so a changed instance can never read stale entries.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetMatrix returns the cached matrix for a stop-set fingerprint,
	// or nil on a miss.
	GetMatrix(ctx context.Context, fingerprint string) ([][]float64, error)

	// SetMatrix caches a freshly built matrix under its fingerprint.
	SetMatrix(ctx context.Context, fingerprint string, matrix [][]float64, ttl time.Duration) error
}
