package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrInviteUnavailable is returned when an invite token is unknown, used or expired.
	ErrInviteUnavailable = errors.New("invite unavailable")
	// ErrUnknownSpecialty is returned when a requested specialty is not in the catalog.
	ErrUnknownSpecialty = errors.New("unknown specialty")
	// ErrInterviewerExists is returned when the invited email already has an account.
	ErrInterviewerExists = errors.New("interviewer already exists")
	// ErrSlotOverlap is returned when a new slot intersects an existing one of the same interviewer.
	ErrSlotOverlap = errors.New("slot overlaps existing slot")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
