package models

import "time"

// ActiveBooking is a student's upcoming, uncancelled booking.
type ActiveBooking struct {
	ID              int64     `db:"id" json:"id"`
	StudentName     string    `db:"student_name" json:"student_name"`
	TeamsMeetingURL *string   `db:"teams_meeting_url" json:"teams_meeting_url"`
	BookedAt        time.Time `db:"booked_at" json:"booked_at"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	InterviewerName string    `db:"interviewer_name" json:"interviewer_name"`
}

// StudentProfile is returned by the student "me" endpoint.
type StudentProfile struct {
	Email         string         `json:"email"`
	ActiveBooking *ActiveBooking `json:"activeBooking"`
	CanBook       bool           `json:"canBook"`
}
