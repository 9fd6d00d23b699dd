package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

func registration() models.Registration {
	return models.Registration{
		Token:        "invite-token",
		Name:         "Ada",
		PasswordHash: "hash",
		Specialties:  []string{"Technical", "Behavioral"},
	}
}

func expectInviteLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email FROM interviewer_invites WHERE token = $1 AND used_at IS NULL AND expires_at > NOW()")).
		WithArgs("invite-token").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(int64(3), "ada@dal.ca"))
}

func TestInviteHasLiveInvite(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInviteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM interviewer_invites WHERE email = $1 AND used_at IS NULL AND expires_at > NOW()")).
		WithArgs("ada@dal.ca").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	live, err := repo.HasLiveInvite(context.Background(), "ada@dal.ca")
	require.NoError(t, err)
	assert.False(t, live)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInviteRepository(db)

	now := time.Now()
	expires := now.Add(7 * 24 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO interviewer_invites (email, token, expires_at) VALUES ($1, $2, $3) RETURNING id, created_at")).
		WithArgs("ada@dal.ca", "tok", expires).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	invite := &models.Invite{Email: "ada@dal.ca", Token: "tok", ExpiresAt: expires}
	require.NoError(t, repo.Create(context.Background(), invite))
	assert.Equal(t, int64(11), invite.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRegisterCommits(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInviteRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	expectInviteLookup(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM interview_types WHERE name = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Technical").AddRow(int64(2), "Behavioral"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO interviewers (email, password_hash, name)")).
		WithArgs("ada@dal.ca", "hash", "Ada").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO interviewer_specialties")).
		WithArgs(int64(42), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO interviewer_specialties")).
		WithArgs(int64(42), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE interviewer_invites SET used_at = NOW() WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	interviewer, err := repo.Register(context.Background(), registration())
	require.NoError(t, err)
	assert.Equal(t, int64(42), interviewer.ID)
	assert.Equal(t, "ada@dal.ca", interviewer.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRegisterUnknownSpecialtyRollsBack(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInviteRepository(db)

	mock.ExpectBegin()
	expectInviteLookup(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM interview_types WHERE name = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Technical"))
	mock.ExpectRollback()

	_, err := repo.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrUnknownSpecialty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRegisterUsedInvite(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInviteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM interviewer_invites WHERE token = $1")).
		WithArgs("invite-token").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrInviteUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInviteRegisterDuplicateEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInviteRepository(db)

	mock.ExpectBegin()
	expectInviteLookup(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM interview_types")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Technical").AddRow(int64(2), "Behavioral"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO interviewers")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	_, err := repo.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrInterviewerExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
