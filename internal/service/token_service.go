package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/interview-booking-api/internal/models"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

// TokenConfig defines signing material and lifetimes per role.
type TokenConfig struct {
	Secret            string
	StudentExpiry     time.Duration
	InterviewerExpiry time.Duration
}

// TokenService issues and validates role-tagged HS256 bearer tokens.
type TokenService struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenService constructs a TokenService.
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config, now: time.Now}
}

// Issue signs a token for subject carrying role, valid for ttl.
func (s *TokenService) Issue(subject models.Subject, role models.Role, ttl time.Duration) (string, error) {
	issuedAt := s.now().UTC()
	claims := &models.Claims{
		InterviewerID: subject.InterviewerID,
		Email:         subject.Email,
		Type:          role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectString(subject),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// IssueStudent issues a student token for a verified email.
func (s *TokenService) IssueStudent(email string) (string, error) {
	return s.Issue(models.Subject{Email: email}, models.RoleStudent, s.config.StudentExpiry)
}

// IssueInterviewer issues an interviewer token.
func (s *TokenService) IssueInterviewer(id int64, email string) (string, error) {
	return s.Issue(models.Subject{InterviewerID: id, Email: email}, models.RoleInterviewer, s.config.InterviewerExpiry)
}

// Verify checks signature and expiry. Any failure is reported as ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidToken.Code, appErrors.ErrInvalidToken.Status, appErrors.ErrInvalidToken.Message)
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}

func subjectString(subject models.Subject) string {
	if subject.InterviewerID > 0 {
		return strconv.FormatInt(subject.InterviewerID, 10)
	}
	return subject.Email
}
