package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

// InviteRepository manages interviewer invites and their consumption.
type InviteRepository struct {
	db *sqlx.DB
}

// NewInviteRepository creates a new instance of InviteRepository.
func NewInviteRepository(db *sqlx.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// HasLiveInvite reports whether the email holds an unused, unexpired invite.
func (r *InviteRepository) HasLiveInvite(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM interviewer_invites WHERE email = $1 AND used_at IS NULL AND expires_at > NOW())`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check live invite: %w", err)
	}
	return exists, nil
}

// Create persists a new invite and fills its generated columns.
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	const query = `INSERT INTO interviewer_invites (email, token, expires_at) VALUES ($1, $2, $3) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, invite.Email, invite.Token, invite.ExpiresAt).Scan(&invite.ID, &invite.CreatedAt); err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// Register consumes the invite and creates the interviewer with its specialties. Either everything
// is committed or nothing is.
func (r *InviteRepository) Register(ctx context.Context, reg models.Registration) (interviewer *models.Interviewer, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin registration transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var invite models.Invite
	const inviteQuery = `SELECT id, email FROM interviewer_invites WHERE token = $1 AND used_at IS NULL AND expires_at > NOW() FOR UPDATE`
	if err = tx.GetContext(ctx, &invite, inviteQuery, reg.Token); err != nil {
		if err == sql.ErrNoRows {
			err = ErrInviteUnavailable
			return nil, err
		}
		return nil, fmt.Errorf("find invite: %w", err)
	}

	var types []models.InterviewType
	const typesQuery = `SELECT id, name FROM interview_types WHERE name = ANY($1)`
	if err = tx.SelectContext(ctx, &types, typesQuery, pq.Array(reg.Specialties)); err != nil {
		return nil, fmt.Errorf("resolve specialties: %w", err)
	}
	if len(types) != len(reg.Specialties) {
		err = ErrUnknownSpecialty
		return nil, err
	}

	created := models.Interviewer{Email: invite.Email, Name: reg.Name}
	const insertInterviewer = `INSERT INTO interviewers (email, password_hash, name) VALUES ($1, $2, $3) RETURNING id, created_at`
	if err = tx.QueryRowxContext(ctx, insertInterviewer, invite.Email, reg.PasswordHash, reg.Name).Scan(&created.ID, &created.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			err = ErrInterviewerExists
			return nil, err
		}
		return nil, fmt.Errorf("insert interviewer: %w", err)
	}

	const insertSpecialty = `INSERT INTO interviewer_specialties (interviewer_id, interview_type_id) VALUES ($1, $2)`
	for _, t := range types {
		if _, err = tx.ExecContext(ctx, insertSpecialty, created.ID, t.ID); err != nil {
			return nil, fmt.Errorf("insert specialty %s: %w", t.Name, err)
		}
	}

	const markUsed = `UPDATE interviewer_invites SET used_at = NOW() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, markUsed, invite.ID); err != nil {
		return nil, fmt.Errorf("mark invite used: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration: %w", err)
	}
	return &created, nil
}
