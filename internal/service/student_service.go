package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

type verificationCodeRepository interface {
	Issue(ctx context.Context, email, code string, expiresAt time.Time) error
	Consume(ctx context.Context, email, code string) (int64, error)
}

type activeBookingRepository interface {
	ActiveForStudent(ctx context.Context, email string) (*models.ActiveBooking, error)
}

type studentTokenIssuer interface {
	IssueStudent(email string) (string, error)
}

type codeRateLimiter interface {
	CheckCodeRequest(ctx context.Context, ip, email string) error
}

// StudentConfig defines the verification code policy.
type StudentConfig struct {
	AllowedDomain string
	CodeTTL       time.Duration
}

// StudentService implements email-code verification and the student profile.
type StudentService struct {
	codes     verificationCodeRepository
	bookings  activeBookingRepository
	tokens    studentTokenIssuer
	mailer    Mailer
	limiter   codeRateLimiter
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	config    StudentConfig
	now       func() time.Time
	newCode   func() (string, error)
}

// NewStudentService constructs a StudentService. limiter and metrics may be nil.
func NewStudentService(codes verificationCodeRepository, bookings activeBookingRepository, tokens studentTokenIssuer, mailer Mailer, limiter codeRateLimiter, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, config StudentConfig) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.CodeTTL <= 0 {
		config.CodeTTL = 10 * time.Minute
	}
	return &StudentService{
		codes:     codes,
		bookings:  bookings,
		tokens:    tokens,
		mailer:    mailer,
		limiter:   limiter,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       time.Now,
		newCode:   generateCode,
	}
}

// RequestCode issues a fresh code for the email, invalidating earlier ones, and mails it.
func (s *StudentService) RequestCode(ctx context.Context, req dto.RequestCodeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "Email is required")
	}

	email := normalizeEmail(req.Email)
	if !inDomain(email, s.config.AllowedDomain) {
		return validationError(nil, domainMessage(s.config.AllowedDomain))
	}

	if s.limiter != nil {
		if err := s.limiter.CheckCodeRequest(ctx, req.IP, email); err != nil {
			return err
		}
	}

	code, err := s.newCode()
	if err != nil {
		return appErrors.Internalf(err, "Failed to send verification code")
	}

	if err := s.codes.Issue(ctx, email, code, s.now().UTC().Add(s.config.CodeTTL)); err != nil {
		return appErrors.Internalf(err, "Failed to send verification code")
	}

	err = s.mailer.Send(ctx, email, code)
	s.metrics.RecordCodeDispatch(err)
	if err != nil {
		return appErrors.Internalf(err, "Failed to send verification code")
	}
	return nil
}

// VerifyCode consumes a live code and returns a student token. Wrong, expired and reused codes are
// indistinguishable to the caller.
func (s *StudentService) VerifyCode(ctx context.Context, req dto.VerifyCodeRequest) (*dto.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		if failedRequired(err) {
			return nil, validationError(err, "Email and code are required")
		}
		return nil, validationError(err, "Invalid or expired code")
	}

	email := normalizeEmail(req.Email)
	if _, err := s.codes.Consume(ctx, email, req.Code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, validationError(nil, "Invalid or expired code")
		}
		return nil, appErrors.Internalf(err, "Failed to verify code")
	}

	token, err := s.tokens.IssueStudent(email)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to verify code")
	}
	s.metrics.RecordTokenIssued(models.RoleStudent)

	return &dto.TokenResponse{Message: "Email verified", Token: token}, nil
}

// Me returns the student's active booking, if any, and whether they may book.
func (s *StudentService) Me(ctx context.Context, email string) (*models.StudentProfile, error) {
	booking, err := s.bookings.ActiveForStudent(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Internalf(err, "Failed to get student info")
	}
	return &models.StudentProfile{
		Email:         email,
		ActiveBooking: booking,
		CanBook:       booking == nil,
	}, nil
}

var codeSpan = big.NewInt(900000)

// generateCode returns a uniformly random code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
