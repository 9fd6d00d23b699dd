package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/pkg/logger"
)

// AuditRecorder persists audit entries.
type AuditRecorder interface {
	Create(ctx context.Context, log *models.AuditLog) error
}

const anonymousActor = "anonymous"

// Audit records an audit log entry after each successful request. Recording failures are logged
// and never change the response.
func Audit(recorder AuditRecorder, action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now().UTC()
		c.Next()

		if recorder == nil || c.Writer.Status() >= 400 {
			return
		}

		actor := anonymousActor
		if claims, ok := ClaimsFromContext(c); ok {
			actor = claims.Email
		}

		payload, _ := json.Marshal(map[string]interface{}{
			"path":    c.FullPath(),
			"method":  c.Request.Method,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).Milliseconds(),
		})

		err := recorder.Create(c.Request.Context(), &models.AuditLog{
			Action:    action,
			Resource:  resource,
			Actor:     actor,
			Payload:   payload,
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
			CreatedAt: start,
		})
		if err != nil {
			logger.FromContext(c).Warn("audit log write failed", zap.String("action", action), zap.Error(err))
		}
	}
}
