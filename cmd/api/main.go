package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-booking-api/internal/handler"
	"github.com/noah-isme/interview-booking-api/internal/repository"
	"github.com/noah-isme/interview-booking-api/internal/server"
	"github.com/noah-isme/interview-booking-api/internal/service"
	"github.com/noah-isme/interview-booking-api/pkg/cache"
	"github.com/noah-isme/interview-booking-api/pkg/config"
	"github.com/noah-isme/interview-booking-api/pkg/database"
	"github.com/noah-isme/interview-booking-api/pkg/logger"
)

// @title Interview Booking API
// @version 1.0.0
// @description Interview slot booking between interviewers and verified students
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(context.Background(), db, logr); err != nil {
			return err
		}
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	validate := validator.New()
	metrics := service.NewMetricsService()
	tokens := service.NewTokenService(service.TokenConfig{
		Secret:            cfg.JWT.Secret,
		StudentExpiry:     cfg.JWT.StudentExpiry,
		InterviewerExpiry: cfg.JWT.InterviewerExpiry,
	})

	interviewerRepo := repository.NewInterviewerRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	typeRepo := repository.NewInterviewTypeRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	healthRepo := repository.NewHealthRepository(db, redisClient)

	cacheSvc := service.NewCacheService(repository.NewCacheRepository(redisClient, "booking:"), metrics, cfg.Cache.TypesTTL, logr, redisClient != nil)
	limiter := service.NewRateLimiterService(repository.NewRateLimitRepository(redisClient, "booking:rl:"), metrics, logr, service.RateLimitConfig{
		Enabled:         cfg.RateLimit.Enabled && redisClient != nil,
		PerEmailPerHour: cfg.RateLimit.PerEmailPerHour,
		PerIPPerHour:    cfg.RateLimit.PerIPPerHour,
		Window:          cfg.RateLimit.Window,
	})
	if cfg.RateLimit.Enabled && redisClient == nil {
		logr.Warn("RATE_LIMIT_ENABLED is set but Redis is disabled; verification codes are not rate limited")
	}

	mailer := newMailer(cfg, logr)

	studentSvc := service.NewStudentService(verificationRepo, bookingRepo, tokens, mailer, limiter, metrics, validate, logr, service.StudentConfig{
		AllowedDomain: cfg.Verification.AllowedDomain,
		CodeTTL:       cfg.Verification.CodeTTL,
	})
	authSvc := service.NewAuthService(interviewerRepo, inviteRepo, tokens, metrics, validate, logr, service.AuthConfig{
		AllowedDomain: cfg.Verification.AllowedDomain,
		FrontendURL:   cfg.FrontendURL,
		InviteTTL:     cfg.Invites.TTL,
		BcryptCost:    cfg.Invites.BcryptCost,
	})
	slotSvc := service.NewSlotService(slotRepo, typeRepo, cacheSvc, metrics, validate, logr, cfg.Cache.TypesTTL)

	router, err := server.NewRouter(server.Options{
		Env:            cfg.Env,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		Logger:         logr,
		Metrics:        metrics,
		Tokens:         tokens,
		Audit:          auditRepo,
	}, server.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Student: handler.NewStudentHandler(studentSvc),
		Slot:    handler.NewSlotHandler(slotSvc),
		Health:  handler.NewHealthHandler(healthRepo),
		Metrics: handler.NewMetricsHandler(metrics.Handler()),
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	logr.Warn("POST /auth/invite is not authenticated; restrict it at the network edge")

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logr.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logr.Info("server exited")
	return nil
}

func newMailer(cfg *config.Config, logr *zap.Logger) service.Mailer {
	if cfg.Email.SendGridAPIKey == "" {
		logr.Info("SENDGRID_API_KEY not set; verification codes are written to the log")
		return service.NewLogMailer(logr)
	}
	return service.NewSendGridMailer(service.SendGridConfig{
		APIKey:      cfg.Email.SendGridAPIKey,
		FromEmail:   cfg.Email.FromEmail,
		FromName:    cfg.Email.FromName,
		SandboxMode: cfg.Email.SandboxMode,
		CodeTTL:     cfg.Verification.CodeTTL,
	}, logr)
}
