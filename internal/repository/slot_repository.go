package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/interview-booking-api/internal/models"
)

// SlotRepository persists interviewer availability windows.
type SlotRepository struct {
	db *sqlx.DB
}

// NewSlotRepository creates a new instance of SlotRepository.
func NewSlotRepository(db *sqlx.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// FindSpecialtyType resolves an interview type the interviewer holds as a specialty. sql.ErrNoRows
// covers both an unknown type and a missing specialty.
func (r *SlotRepository) FindSpecialtyType(ctx context.Context, interviewerID int64, typeName string) (int64, error) {
	const query = `SELECT it.id
FROM interview_types it
JOIN interviewer_specialties isp ON it.id = isp.interview_type_id
WHERE it.name = $1 AND isp.interviewer_id = $2`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, typeName, interviewerID); err != nil {
		if err == sql.ErrNoRows {
			return 0, err
		}
		return 0, fmt.Errorf("find specialty type: %w", err)
	}
	return id, nil
}

// Create inserts the slot unless it overlaps another slot of the same interviewer on the half-open
// interval [start, end). Creations for one interviewer are serialised by a transaction-scoped
// advisory lock so the overlap check and the insert cannot interleave.
func (r *SlotRepository) Create(ctx context.Context, slot models.NewSlot) (created *models.Slot, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin slot transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, slot.InterviewerID); err != nil {
		return nil, fmt.Errorf("lock interviewer slots: %w", err)
	}

	var overlaps bool
	const overlapQuery = `SELECT EXISTS(SELECT 1 FROM availability_slots WHERE interviewer_id = $1 AND start_time < $3 AND end_time > $2)`
	if err = tx.GetContext(ctx, &overlaps, overlapQuery, slot.InterviewerID, slot.StartTime, slot.EndTime); err != nil {
		return nil, fmt.Errorf("check slot overlap: %w", err)
	}
	if overlaps {
		err = ErrSlotOverlap
		return nil, err
	}

	var inserted models.Slot
	const insertQuery = `INSERT INTO availability_slots (interviewer_id, interview_type_id, start_time, end_time)
VALUES ($1, $2, $3, $4)
RETURNING id, start_time, end_time, is_booked, created_at`
	if err = tx.GetContext(ctx, &inserted, insertQuery, slot.InterviewerID, slot.InterviewTypeID, slot.StartTime, slot.EndTime); err != nil {
		return nil, fmt.Errorf("insert slot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit slot: %w", err)
	}
	return &inserted, nil
}

// IsBooked returns the booked flag of a slot owned by the interviewer. sql.ErrNoRows means the slot
// does not exist or belongs to someone else.
func (r *SlotRepository) IsBooked(ctx context.Context, slotID, interviewerID int64) (bool, error) {
	const query = `SELECT is_booked FROM availability_slots WHERE id = $1 AND interviewer_id = $2`
	var booked bool
	if err := r.db.GetContext(ctx, &booked, query, slotID, interviewerID); err != nil {
		if err == sql.ErrNoRows {
			return false, err
		}
		return false, fmt.Errorf("find owned slot: %w", err)
	}
	return booked, nil
}

// DeleteUnbooked removes an unbooked slot owned by the interviewer. sql.ErrNoRows is returned when no
// row qualified, for example because a booking landed after IsBooked was checked.
func (r *SlotRepository) DeleteUnbooked(ctx context.Context, slotID, interviewerID int64) error {
	const query = `DELETE FROM availability_slots WHERE id = $1 AND interviewer_id = $2 AND is_booked = FALSE`
	res, err := r.db.ExecContext(ctx, query, slotID, interviewerID)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAvailable returns unbooked future slots of the type across all interviewers.
func (r *SlotRepository) ListAvailable(ctx context.Context, typeName string) ([]models.AvailableSlot, error) {
	const query = `SELECT s.id, s.start_time, s.end_time, it.name AS interview_type, i.name AS interviewer_name
FROM availability_slots s
JOIN interview_types it ON s.interview_type_id = it.id
JOIN interviewers i ON s.interviewer_id = i.id
WHERE it.name = $1 AND s.is_booked = FALSE AND s.start_time > NOW()
ORDER BY s.start_time`
	slots := []models.AvailableSlot{}
	if err := r.db.SelectContext(ctx, &slots, query, typeName); err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	return slots, nil
}

type interviewerSlotRow struct {
	models.Slot
	BookingID    sql.NullInt64  `db:"booking_id"`
	StudentName  sql.NullString `db:"student_name"`
	StudentEmail sql.NullString `db:"student_email"`
}

// ListForInterviewer returns every slot of the interviewer joined to its active booking.
func (r *SlotRepository) ListForInterviewer(ctx context.Context, interviewerID int64) ([]models.InterviewerSlot, error) {
	const query = `SELECT s.id, s.start_time, s.end_time, s.is_booked, s.created_at, it.name AS interview_type,
b.id AS booking_id, b.student_name, b.student_email
FROM availability_slots s
JOIN interview_types it ON s.interview_type_id = it.id
LEFT JOIN bookings b ON s.id = b.slot_id AND b.cancelled_at IS NULL
WHERE s.interviewer_id = $1
ORDER BY s.start_time`
	var rows []interviewerSlotRow
	if err := r.db.SelectContext(ctx, &rows, query, interviewerID); err != nil {
		return nil, fmt.Errorf("list interviewer slots: %w", err)
	}

	slots := make([]models.InterviewerSlot, 0, len(rows))
	for _, row := range rows {
		item := models.InterviewerSlot{Slot: row.Slot}
		if row.BookingID.Valid {
			item.Booking = &models.SlotBooking{
				ID:           row.BookingID.Int64,
				StudentName:  row.StudentName.String,
				StudentEmail: row.StudentEmail.String,
			}
		}
		slots = append(slots, item)
	}
	return slots, nil
}
