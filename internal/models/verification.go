package models

import "time"

// VerificationCode is a single-use six digit code bound to a student email.
type VerificationCode struct {
	ID         int64      `db:"id"`
	Email      string     `db:"email"`
	Code       string     `db:"code"`
	ExpiresAt  time.Time  `db:"expires_at"`
	VerifiedAt *time.Time `db:"verified_at"`
	CreatedAt  time.Time  `db:"created_at"`
}
