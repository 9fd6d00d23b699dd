package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-booking-api/pkg/logger"
	"github.com/noah-isme/interview-booking-api/pkg/response"
)

const healthTimeout = 2 * time.Second

type healthChecker interface {
	ServerTime(ctx context.Context) (time.Time, error)
	PingCache(ctx context.Context) error
}

// HealthHandler reports liveness and readiness of the backing stores.
type HealthHandler struct {
	checker healthChecker
}

// NewHealthHandler creates a new handler.
func NewHealthHandler(checker healthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health godoc
// @Summary Database health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	now, err := h.checker.ServerTime(ctx)
	if err != nil {
		logger.FromContext(c).Error("health check failed", zap.Error(err))
		response.JSON(c, http.StatusInternalServerError, gin.H{"status": "error", "database": "disconnected"})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok", "database": "connected", "serverTime": now})
}

// Ready godoc
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if _, err := h.checker.ServerTime(ctx); err != nil {
		logger.FromContext(c).Warn("database not ready", zap.Error(err))
		response.JSON(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "database"})
		return
	}
	if err := h.checker.PingCache(ctx); err != nil {
		logger.FromContext(c).Warn("cache not ready", zap.Error(err))
		response.JSON(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "cache"})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ready"})
}
