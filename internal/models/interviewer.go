package models

import "time"

// Interviewer is an account created through invite registration.
type Interviewer struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Specialty is an interview type an interviewer is allowed to offer.
type Specialty struct {
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// InterviewerProfile is returned by the interviewer "me" endpoint.
type InterviewerProfile struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	CreatedAt   time.Time   `json:"created_at"`
	Specialties []Specialty `json:"specialties"`
}
