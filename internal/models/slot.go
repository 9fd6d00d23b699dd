package models

import "time"

// InterviewType is an entry of the interview catalog.
type InterviewType struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// Slot is an availability window owned by an interviewer.
type Slot struct {
	ID            int64     `db:"id" json:"id"`
	StartTime     time.Time `db:"start_time" json:"start_time"`
	EndTime       time.Time `db:"end_time" json:"end_time"`
	IsBooked      bool      `db:"is_booked" json:"is_booked"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	InterviewType string    `db:"interview_type" json:"interview_type"`
}

// NewSlot describes a window to insert for an interviewer.
type NewSlot struct {
	InterviewerID   int64
	InterviewTypeID int64
	StartTime       time.Time
	EndTime         time.Time
}

// SlotBooking summarises the student holding a slot.
type SlotBooking struct {
	ID           int64  `json:"id"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}

// InterviewerSlot is a slot as its owner sees it, with the active booking if any.
type InterviewerSlot struct {
	Slot
	Booking *SlotBooking `json:"booking"`
}

// AvailableSlot is an open slot as students see it.
type AvailableSlot struct {
	ID              int64     `db:"id" json:"id"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	InterviewType   string    `db:"interview_type" json:"interview_type"`
	InterviewerName string    `db:"interviewer_name" json:"interviewer_name"`
}
