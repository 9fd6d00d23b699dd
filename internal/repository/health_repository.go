package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// HealthRepository probes the backing stores.
type HealthRepository struct {
	db    *sqlx.DB
	redis *redis.Client
}

// NewHealthRepository creates a new instance of HealthRepository. redis may be nil.
func NewHealthRepository(db *sqlx.DB, client *redis.Client) *HealthRepository {
	return &HealthRepository{db: db, redis: client}
}

// ServerTime returns the database clock.
func (r *HealthRepository) ServerTime(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.db.GetContext(ctx, &now, `SELECT NOW()`); err != nil {
		return time.Time{}, fmt.Errorf("query server time: %w", err)
	}
	return now, nil
}

// PingCache checks Redis when it is configured.
func (r *HealthRepository) PingCache(ctx context.Context) error {
	if r.redis == nil {
		return nil
	}
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
