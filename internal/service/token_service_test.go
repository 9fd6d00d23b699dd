package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-booking-api/internal/models"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

func newTestTokenService() *TokenService {
	return NewTokenService(TokenConfig{Secret: "test-secret", StudentExpiry: time.Hour, InterviewerExpiry: 7 * 24 * time.Hour})
}

func TestTokenServiceStudentRoundTrip(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueStudent("a@dal.ca")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Type)
	assert.Equal(t, "a@dal.ca", claims.Email)
	assert.Zero(t, claims.InterviewerID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenServiceInterviewerRoundTrip(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueInterviewer(42, "ada@dal.ca")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleInterviewer, claims.Type)
	assert.Equal(t, int64(42), claims.InterviewerID)
	assert.Equal(t, "42", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := newTestTokenService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.IssueStudent("a@dal.ca")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "INVALID_TOKEN", appErr.Code)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestTokenServiceRejectsForeignSignature(t *testing.T) {
	other := NewTokenService(TokenConfig{Secret: "other-secret", StudentExpiry: time.Hour})
	token, err := other.IssueStudent("a@dal.ca")
	require.NoError(t, err)

	_, err = newTestTokenService().Verify(token)
	assert.Equal(t, "INVALID_TOKEN", appErrors.FromError(err).Code)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	_, err := newTestTokenService().Verify("not-a-token")
	assert.Equal(t, "Invalid or expired token", appErrors.FromError(err).Message)
}
