package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingActiveForStudent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_name", "teams_meeting_url", "booked_at", "start_time", "end_time", "interviewer_name"}).
		AddRow(int64(9), "Bo", nil, time.Now(), start, start.Add(time.Hour), "Ada")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.student_email = $1 AND b.cancelled_at IS NULL AND s.start_time > NOW()")).
		WithArgs("bo@dal.ca").
		WillReturnRows(rows)

	booking, err := repo.ActiveForStudent(context.Background(), "bo@dal.ca")
	require.NoError(t, err)
	assert.Equal(t, int64(9), booking.ID)
	assert.Nil(t, booking.TeamsMeetingURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingActiveForStudentNone(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b")).
		WithArgs("bo@dal.ca").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ActiveForStudent(context.Background(), "bo@dal.ca")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
