package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

// InterviewTypeRepository reads the interview type catalog.
type InterviewTypeRepository struct {
	db *sqlx.DB
}

// NewInterviewTypeRepository creates a new instance of InterviewTypeRepository.
func NewInterviewTypeRepository(db *sqlx.DB) *InterviewTypeRepository {
	return &InterviewTypeRepository{db: db}
}

// List returns the catalog ordered by name.
func (r *InterviewTypeRepository) List(ctx context.Context) ([]models.InterviewType, error) {
	const query = `SELECT id, name, description FROM interview_types ORDER BY name`
	types := []models.InterviewType{}
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("list interview types: %w", err)
	}
	return types, nil
}
