package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

// RateLimitRepository counts attempts per key within a window.
type RateLimitRepository interface {
	IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimitConfig bounds verification code requests.
type RateLimitConfig struct {
	Enabled         bool
	PerEmailPerHour int
	PerIPPerHour    int
	Window          time.Duration
}

// RateLimiterService checks per-IP and per-email limits for verification code requests.
type RateLimiterService struct {
	repo    RateLimitRepository
	metrics *MetricsService
	logger  *zap.Logger
	config  RateLimitConfig
}

// NewRateLimiterService constructs a RateLimiterService.
func NewRateLimiterService(repo RateLimitRepository, metrics *MetricsService, logger *zap.Logger, config RateLimitConfig) *RateLimiterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Window <= 0 {
		config.Window = time.Hour
	}
	return &RateLimiterService{repo: repo, metrics: metrics, logger: logger, config: config}
}

// CheckCodeRequest returns ErrRateLimited once either the IP or the email exceeded its budget.
// Store failures are logged and the request is let through.
func (s *RateLimiterService) CheckCodeRequest(ctx context.Context, ip, email string) error {
	if s == nil || !s.config.Enabled || s.repo == nil {
		return nil
	}

	checks := []struct {
		key   string
		limit int
	}{
		{key: fmt.Sprintf("code:ip:%s", ip), limit: s.config.PerIPPerHour},
		{key: fmt.Sprintf("code:email:%s", email), limit: s.config.PerEmailPerHour},
	}
	for _, check := range checks {
		allowed, err := s.repo.IncrementAndCheck(ctx, check.key, check.limit, s.config.Window)
		if err != nil {
			s.logger.Warn("rate limit check failed", zap.String("key", check.key), zap.Error(err))
			continue
		}
		if !allowed {
			s.logger.Warn("verification code rate limit exceeded", zap.String("key", check.key))
			s.metrics.RecordRateLimited()
			return appErrors.ErrRateLimited
		}
	}
	return nil
}
