package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

func TestAuditCreateFillsDefaults(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_logs (id, action, resource, actor, payload, ip_address, user_agent, created_at)")).
		WithArgs(sqlmock.AnyArg(), models.AuditActionInviteCreate, "/auth/invite", "anonymous", []byte(`{}`), "10.0.0.1", "curl", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	log := &models.AuditLog{Action: models.AuditActionInviteCreate, Resource: "/auth/invite", Actor: "anonymous", IPAddress: "10.0.0.1", UserAgent: "curl"}
	require.NoError(t, repo.Create(context.Background(), log))
	assert.NotEmpty(t, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
