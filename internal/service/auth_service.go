package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/internal/repository"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

type interviewerRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Interviewer, error)
	FindByID(ctx context.Context, id int64) (*models.Interviewer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListSpecialties(ctx context.Context, interviewerID int64) ([]models.Specialty, error)
}

type inviteRepository interface {
	HasLiveInvite(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, invite *models.Invite) error
	Register(ctx context.Context, reg models.Registration) (*models.Interviewer, error)
}

type interviewerTokenIssuer interface {
	IssueInterviewer(id int64, email string) (string, error)
}

// bcrypt ignores input past 72 bytes and x/crypto rejects it outright.
const maxPasswordBytes = 72

// AuthConfig defines configuration for interviewer onboarding and login.
type AuthConfig struct {
	AllowedDomain string
	FrontendURL   string
	InviteTTL     time.Duration
	BcryptCost    int
}

// AuthService implements invites, registration, login and the interviewer profile.
type AuthService struct {
	interviewers interviewerRepository
	invites      inviteRepository
	tokens       interviewerTokenIssuer
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	config       AuthConfig
	now          func() time.Time
	compareHash  func(hashed, password []byte) error

	dummyOnce sync.Once
	dummy     []byte
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(interviewers interviewerRepository, invites inviteRepository, tokens interviewerTokenIssuer, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.InviteTTL <= 0 {
		config.InviteTTL = 7 * 24 * time.Hour
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		interviewers: interviewers,
		invites:      invites,
		tokens:       tokens,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
		config:       config,
		now:          time.Now,
		compareHash:  bcrypt.CompareHashAndPassword,
	}
}

// CreateInvite issues a single-use registration invite for the email.
func (s *AuthService) CreateInvite(ctx context.Context, req dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Email is required")
	}

	email := normalizeEmail(req.Email)
	if !inDomain(email, s.config.AllowedDomain) {
		return nil, validationError(nil, domainMessage(s.config.AllowedDomain))
	}

	exists, err := s.interviewers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to create invite")
	}
	if exists {
		return nil, conflictError("Interviewer already registered")
	}

	live, err := s.invites.HasLiveInvite(ctx, email)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to create invite")
	}
	if live {
		return nil, conflictError("Invite already sent to this email")
	}

	invite := &models.Invite{
		Email:     email,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().UTC().Add(s.config.InviteTTL),
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, appErrors.Internalf(err, "Failed to create invite")
	}

	s.logger.Info("interviewer invite created", zap.String("email", email), zap.Time("expires_at", invite.ExpiresAt))

	return &dto.InviteResponse{
		Message:    "Invite created",
		InviteLink: s.config.FrontendURL + "/register?token=" + invite.Token,
		ExpiresAt:  invite.ExpiresAt,
	}, nil
}

// Register consumes an invite and creates the interviewer account atomically. The token is issued
// only after the registration committed.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		switch {
		case failedRequired(err):
			return nil, validationError(err, "Token, name, password, and specialties are required")
		case failedOn(err, "Specialties", "min"):
			return nil, validationError(err, "At least one specialty is required")
		default:
			return nil, validationError(err, "Password must be at least 8 characters")
		}
	}

	if len(req.Password) > maxPasswordBytes {
		return nil, validationError(nil, "Password must be at most 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to register")
	}

	interviewer, err := s.invites.Register(ctx, models.Registration{
		Token:        req.Token,
		Name:         req.Name,
		PasswordHash: string(hash),
		Specialties:  req.Specialties,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInviteUnavailable):
			return nil, validationError(nil, "Invalid or expired invite")
		case errors.Is(err, repository.ErrUnknownSpecialty):
			return nil, validationError(nil, "Invalid specialty provided")
		case errors.Is(err, repository.ErrInterviewerExists):
			return nil, conflictError("Interviewer already registered")
		default:
			return nil, appErrors.Internalf(err, "Failed to register")
		}
	}

	token, err := s.tokens.IssueInterviewer(interviewer.ID, interviewer.Email)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to register")
	}
	s.metrics.RecordTokenIssued(models.RoleInterviewer)
	s.logger.Info("interviewer registered", zap.Int64("interviewer_id", interviewer.ID))

	return &dto.TokenResponse{Message: "Registration successful", Token: token}, nil
}

// Login authenticates an interviewer. Unknown emails and wrong passwords share one error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Email and password are required")
	}

	interviewer, err := s.interviewers.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Unknown emails still pay for one comparison so response time does not reveal accounts.
			_ = s.compareHash(s.dummyHash(), []byte(req.Password))
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Internalf(err, "Failed to login")
	}

	if err := s.compareHash([]byte(interviewer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueInterviewer(interviewer.ID, interviewer.Email)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to login")
	}
	s.metrics.RecordTokenIssued(models.RoleInterviewer)

	return &dto.TokenResponse{Message: "Login successful", Token: token}, nil
}

// dummyHash is a hash at the configured cost, compared against when the login email is unknown.
func (s *AuthService) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.config.BcryptCost)
		if err != nil {
			s.logger.Error("generate dummy password hash", zap.Error(err))
			return
		}
		s.dummy = hash
	})
	return s.dummy
}

// Me returns the interviewer profile with specialties.
func (s *AuthService) Me(ctx context.Context, interviewerID int64) (*models.InterviewerProfile, error) {
	interviewer, err := s.interviewers.FindByID(ctx, interviewerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Interviewer not found")
		}
		return nil, appErrors.Internalf(err, "Failed to get profile")
	}

	specialties, err := s.interviewers.ListSpecialties(ctx, interviewerID)
	if err != nil {
		return nil, appErrors.Internalf(err, "Failed to get profile")
	}

	return &models.InterviewerProfile{
		ID:          interviewer.ID,
		Email:       interviewer.Email,
		Name:        interviewer.Name,
		CreatedAt:   interviewer.CreatedAt,
		Specialties: specialties,
	}, nil
}
