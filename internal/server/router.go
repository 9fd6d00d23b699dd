package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/interview-booking-api/api/swagger"
	"github.com/noah-isme/interview-booking-api/internal/handler"
	"github.com/noah-isme/interview-booking-api/internal/middleware"
	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/internal/service"
	"github.com/noah-isme/interview-booking-api/pkg/config"
	"github.com/noah-isme/interview-booking-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/interview-booking-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/interview-booking-api/pkg/middleware/requestid"
)

// Options carries the cross-cutting dependencies of the router.
type Options struct {
	Env            string
	AllowedOrigins []string
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is honoured. Empty trusts
	// none, so the client IP is the peer address.
	TrustedProxies []string
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Tokens         middleware.TokenVerifier
	Audit          middleware.AuditRecorder
}

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Student *handler.StudentHandler
	Slot    *handler.SlotHandler
	Health  *handler.HealthHandler
	Metrics *handler.MetricsHandler
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(opts Options, h Handlers) (*gin.Engine, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	if opts.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	interviewerOnly := middleware.RequireRole(opts.Tokens, models.RoleInterviewer)
	studentOnly := middleware.RequireRole(opts.Tokens, models.RoleStudent)

	auth := r.Group("/auth")
	{
		// WARNING: invite creation has no authentication. Anyone who can reach the API can mint
		// interviewer invites; every call is written to audit_logs.
		auth.POST("/invite", middleware.Audit(opts.Audit, models.AuditActionInviteCreate, "interviewer_invite"), h.Auth.CreateInvite)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", interviewerOnly, h.Auth.Me)
	}

	student := r.Group("/student")
	{
		student.POST("/request-code", h.Student.RequestCode)
		student.POST("/verify-code", h.Student.VerifyCode)
		student.GET("/me", studentOnly, h.Student.Me)
	}

	slots := r.Group("/slots")
	{
		slots.GET("/types", h.Slot.Types)
		slots.GET("/available", studentOnly, h.Slot.Available)
		slots.GET("/export", interviewerOnly, h.Slot.Export)
		slots.GET("", interviewerOnly, h.Slot.Mine)
		slots.POST("", interviewerOnly, h.Slot.Create)
		slots.DELETE("/:id", interviewerOnly, h.Slot.Delete)
	}

	return r, nil
}
