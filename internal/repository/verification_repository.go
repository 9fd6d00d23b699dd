package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// VerificationRepository stores student email verification codes.
type VerificationRepository struct {
	db *sqlx.DB
}

// NewVerificationRepository creates a new instance of VerificationRepository.
func NewVerificationRepository(db *sqlx.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Issue expires every pending code of the email and stores the new one in the same transaction,
// leaving at most one usable code per email.
func (r *VerificationRepository) Issue(ctx context.Context, email, code string, expiresAt time.Time) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin code transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const expireQuery = `UPDATE verification_codes SET expires_at = NOW() WHERE email = $1 AND verified_at IS NULL AND expires_at > NOW()`
	if _, err = tx.ExecContext(ctx, expireQuery, email); err != nil {
		return fmt.Errorf("expire pending codes: %w", err)
	}

	const insertQuery = `INSERT INTO verification_codes (email, code, expires_at) VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, insertQuery, email, code, expiresAt); err != nil {
		return fmt.Errorf("insert verification code: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit verification code: %w", err)
	}
	return nil
}

// Consume marks a matching live code as verified. sql.ErrNoRows means the code is wrong, expired
// or already used.
func (r *VerificationRepository) Consume(ctx context.Context, email, code string) (int64, error) {
	const query = `UPDATE verification_codes SET verified_at = NOW()
WHERE email = $1 AND code = $2 AND expires_at > NOW() AND verified_at IS NULL
RETURNING id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, email, code); err != nil {
		if err == sql.ErrNoRows {
			return 0, err
		}
		return 0, fmt.Errorf("consume verification code: %w", err)
	}
	return id, nil
}
