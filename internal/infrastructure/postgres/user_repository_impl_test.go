package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-todo-api/internal/domain/apperror"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

const insertUserQuery = `(?s)INSERT\s+INTO\s+users\s*\(id,\s*email,\s*hashed_password,\s*name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at,\s*updated_at`

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertUserQuery).
		WithArgs("user_alice", "alice@example.com", "$argon2id$hash", nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	u := &entity.User{ID: "user_alice", Email: "alice@example.com", PasswordHash: "$argon2id$hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{constraint: "users_email_key", want: repository.ErrEmailTaken},
		{constraint: "users_pkey", want: repository.ErrUserIDTaken},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(insertUserQuery).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			err := repo.Create(context.Background(), &entity.User{ID: "user_alice", Email: "alice@example.com"})
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperror.ErrConflict)
		})
	}
}

func TestUserRepository_Create_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(insertUserQuery).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &entity.User{ID: "user_alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert user: db down")
	assert.NotErrorIs(t, err, apperror.ErrConflict)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	q := `(?s)SELECT\s+id,\s*email,\s*hashed_password,\s*name,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1`
	mock.ExpectQuery(q).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "created_at", "updated_at"}).
			AddRow("user_alice", "alice@example.com", "$argon2id$hash", "Alice", now, now))

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_alice", u.ID)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Alice", *u.Name)

	mock.ExpectQuery(q).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepository_GetByID_NullName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`(?s)FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("user_bob").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "created_at", "updated_at"}).
			AddRow("user_bob", "bob@example.com", "$argon2id$hash", nil, now, now))

	u, err := repo.GetByID(context.Background(), "user_bob")
	require.NoError(t, err)
	assert.Nil(t, u.Name)
}
