package models

import "time"

// Invite grants one registration to the invited email until it expires.
type Invite struct {
	ID        int64      `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Token     string     `db:"token" json:"token"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Registration carries everything needed to consume an invite.
type Registration struct {
	Token        string
	Name         string
	PasswordHash string
	Specialties  []string
}
