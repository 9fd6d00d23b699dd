package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts attempts per key in fixed Redis windows.
type RateLimitRepository struct {
	client *redis.Client
	prefix string
}

// NewRateLimitRepository constructs a rate limit repository. A nil client allows every attempt.
func NewRateLimitRepository(client *redis.Client, prefix string) *RateLimitRepository {
	return &RateLimitRepository{client: client, prefix: prefix}
}

// IncrementAndCheck records one attempt for key and reports whether the count is still within limit.
// The window starts with the first attempt.
func (r *RateLimitRepository) IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if r.client == nil || limit <= 0 {
		return true, nil
	}

	fullKey := r.prefix + key
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("increment rate limit %s: %w", key, err)
	}
	return incr.Val() <= int64(limit), nil
}
