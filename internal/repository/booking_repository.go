package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

// BookingRepository reads student bookings.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ActiveForStudent returns the earliest uncancelled booking of the email whose slot has not started.
func (r *BookingRepository) ActiveForStudent(ctx context.Context, email string) (*models.ActiveBooking, error) {
	const query = `SELECT b.id, b.student_name, b.teams_meeting_url, b.created_at AS booked_at,
s.start_time, s.end_time, i.name AS interviewer_name
FROM bookings b
JOIN availability_slots s ON b.slot_id = s.id
JOIN interviewers i ON s.interviewer_id = i.id
WHERE b.student_email = $1 AND b.cancelled_at IS NULL AND s.start_time > NOW()
ORDER BY s.start_time
LIMIT 1`
	var booking models.ActiveBooking
	if err := r.db.GetContext(ctx, &booking, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find active booking: %w", err)
	}
	return &booking, nil
}
