package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
)

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name",
	"notification_email_enabled", "theme_preference", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	user := &model.User{Email: "ana@example.com", PasswordHash: "hash", FirstName: "Ana", LastName: "Lee",
		NotificationEmailEnabled: true, ThemePreference: model.ThemeLight}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, uint(11), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &model.User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(userColumns).
				AddRow(3, "ana@example.com", "hash", "Ana", "Lee", true, "dark", now, now),
		},
		{
			name:    "missing",
			rows:    sqlmock.NewRows(userColumns),
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "store failure",
			err:     errors.New("connection reset"),
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb, mock := newMockDB(t)
			repo := NewUserRepository(gdb)

			exp := mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			user, err := repo.FindByEmail(context.Background(), "ana@example.com")
			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(3), user.ID)
			assert.Equal(t, "dark", user.ThemePreference)
		})
	}
}

func TestUserRepository_EmailTakenByOther(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1 AND id <> \$2`).
		WithArgs("bo@example.com", 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.EmailTakenByOther(context.Background(), "bo@example.com", 3)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserRepository_Update(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)
	now := time.Now()

	mock.ExpectExec(`UPDATE "users" SET .*"first_name"=\$\d.* WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "ana@example.com", "hash", "Anna", "Lee", true, "light", now, now))

	name := "Anna"
	user, err := repo.Update(context.Background(), 3, model.ProfilePatch{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateEmailConflict(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	email := "taken@example.com"
	_, err := repo.Update(context.Background(), 3, model.ProfilePatch{Email: &email})
	assert.ErrorIs(t, err, apperrors.ErrEmailInUse)
}
