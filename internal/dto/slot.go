package dto

import "github.com/noah-isme/interview-booking-api/internal/models"

// CreateSlotRequest is the body of POST /slots. Times are RFC 3339.
type CreateSlotRequest struct {
	StartTime     string `json:"start_time" validate:"required"`
	EndTime       string `json:"end_time" validate:"required"`
	InterviewType string `json:"interview_type" validate:"required"`
}

// CreateSlotResponse wraps the newly created slot.
type CreateSlotResponse struct {
	Message string      `json:"message"`
	Slot    models.Slot `json:"slot"`
}

// ExportFile is a rendered slot listing.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
