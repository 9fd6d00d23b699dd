package models

import "github.com/golang-jwt/jwt/v5"

// Role tags a bearer token with the capability it grants.
type Role string

const (
	RoleStudent     Role = "student"
	RoleInterviewer Role = "interviewer"
)

// Claims is the signed token payload. Student tokens carry no interviewer id.
type Claims struct {
	InterviewerID int64  `json:"id,omitempty"`
	Email         string `json:"email"`
	Type          Role   `json:"type"`
	jwt.RegisteredClaims
}

// Subject identifies the bearer of a token.
type Subject struct {
	InterviewerID int64
	Email         string
}
