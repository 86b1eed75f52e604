package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetMatrix returns the distance matrix cached for a stop-set fingerprint,
// or nil on a miss. The fingerprint key makes a changed stop set a miss by
// construction, so no explicit invalidation is needed.
func (r *cacheRepository) GetMatrix(ctx context.Context, fingerprint string) ([][]float64, error) {
	key := matrixKey(fingerprint)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var matrix [][]float64
	if err := json.Unmarshal(data, &matrix); err != nil {
		r.logger.Error("Failed to unmarshal matrix from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal matrix: %w", err)
	}

	return matrix, nil
}

func (r *cacheRepository) SetMatrix(ctx context.Context, fingerprint string, matrix [][]float64, ttl time.Duration) error {
	data, err := json.Marshal(matrix)
	if err != nil {
		r.logger.Error("Failed to marshal matrix", zap.Error(err))
		return fmt.Errorf("marshal matrix: %w", err)
	}

	return r.Set(ctx, matrixKey(fingerprint), data, ttl)
}

func matrixKey(fingerprint string) string {
	return "matrix:" + fingerprint
}
