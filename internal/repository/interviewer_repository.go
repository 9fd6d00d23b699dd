package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

// InterviewerRepository provides database access for interviewer accounts.
type InterviewerRepository struct {
	db *sqlx.DB
}

// NewInterviewerRepository creates a new instance of InterviewerRepository.
func NewInterviewerRepository(db *sqlx.DB) *InterviewerRepository {
	return &InterviewerRepository{db: db}
}

// FindByEmail returns an interviewer by normalized email address.
func (r *InterviewerRepository) FindByEmail(ctx context.Context, email string) (*models.Interviewer, error) {
	const query = `SELECT id, email, name, password_hash, created_at FROM interviewers WHERE email = $1 LIMIT 1`
	var interviewer models.Interviewer
	if err := r.db.GetContext(ctx, &interviewer, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find interviewer by email: %w", err)
	}
	return &interviewer, nil
}

// FindByID returns an interviewer by identifier.
func (r *InterviewerRepository) FindByID(ctx context.Context, id int64) (*models.Interviewer, error) {
	const query = `SELECT id, email, name, password_hash, created_at FROM interviewers WHERE id = $1 LIMIT 1`
	var interviewer models.Interviewer
	if err := r.db.GetContext(ctx, &interviewer, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find interviewer by id: %w", err)
	}
	return &interviewer, nil
}

// ExistsByEmail reports whether an account already uses the email.
func (r *InterviewerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM interviewers WHERE email = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check interviewer email: %w", err)
	}
	return exists, nil
}

// ListSpecialties returns the interview types the interviewer may offer.
func (r *InterviewerRepository) ListSpecialties(ctx context.Context, interviewerID int64) ([]models.Specialty, error) {
	const query = `SELECT it.name, it.description
FROM interviewer_specialties isp
JOIN interview_types it ON it.id = isp.interview_type_id
WHERE isp.interviewer_id = $1
ORDER BY it.name`
	specialties := []models.Specialty{}
	if err := r.db.SelectContext(ctx, &specialties, query, interviewerID); err != nil {
		return nil, fmt.Errorf("list interviewer specialties: %w", err)
	}
	return specialties, nil
}
