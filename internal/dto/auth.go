package dto

import "time"

// CreateInviteRequest is the body of POST /auth/invite.
type CreateInviteRequest struct {
	Email string `json:"email" validate:"required"`
}

// InviteResponse carries the registration link for the invitee.
type InviteResponse struct {
	Message    string    `json:"message"`
	InviteLink string    `json:"inviteLink"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Token       string   `json:"token" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Password    string   `json:"password" validate:"required,min=8"`
	Specialties []string `json:"specialties" validate:"required,min=1"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned whenever a bearer token is issued.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
