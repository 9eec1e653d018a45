package users

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"taskhub/internal/common"
	"taskhub/internal/server/models"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreate_Success(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPostgresRepository(db)

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("Alice", "alice@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("u-1", created))

	u, err := repo.Create(context.Background(), &models.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.Equal(t, "u-1", u.ID)
	require.Equal(t, created, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "hash",
	})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_Success(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPostgresRepository(db)

	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow("u-1", "Alice", "alice@example.com", "hash", created)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash, created_at FROM users`)).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", u.ID)
	require.Equal(t, "hash", u.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash, created_at FROM users`)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
