package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/model"
)

var symptomColumns = []string{"id", "user_id", "description", "severity", "duration", "date", "created_at"}

func TestSymptomRepository_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSymptomRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "symptoms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	s := &model.Symptom{UserID: 5, Description: "Headache", Severity: model.SeverityModerate,
		Duration: "2 hours", Date: time.Now()}
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, uint(7), s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSymptomRepository_ListByUserSince(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSymptomRepository(gdb)
	since := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "symptoms" WHERE user_id = \$1 AND date >= \$2 ORDER BY date DESC,id DESC`).
		WithArgs(5, since).
		WillReturnRows(sqlmock.NewRows(symptomColumns).
			AddRow(9, 5, "Cough", "mild", "3 days", since.AddDate(0, 0, 10), since))

	symptoms, err := repo.ListByUserSince(context.Background(), 5, since)
	require.NoError(t, err)
	require.Len(t, symptoms, 1)
	assert.Equal(t, model.SeverityMild, symptoms[0].Severity)
}
