package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterviewTypeList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewInterviewTypeRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(int64(2), "Behavioral", "Soft skills").
		AddRow(int64(1), "Technical", "Coding")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description FROM interview_types ORDER BY name")).
		WillReturnRows(rows)

	types, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Behavioral", types[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
