// Package session persists the CLI's identity token across process restarts
// in a small local SQLite database, the client-side equivalent of a browser's
// durable storage. The token is removed on logout and whenever the server
// rejects it.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"taskhub/internal/client/migrations"
)

const tokenKey = "token"

// Session is a durable token holder backed by a metadata key/value table.
type Session struct {
	db *sql.DB
}

// Open opens (creating if necessary) the session database at path and
// applies migrations.
func Open(ctx context.Context, path string) (*Session, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session db open error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session db migration error: %w", err)
	}

	return &Session{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Token returns the stored token, or "" when no session exists.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetToken stores the token, replacing any previous session.
func (s *Session) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, []byte(token))
}

// Clear wipes all session state.
func (s *Session) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Session) Close() error {
	return s.db.Close()
}

func (s *Session) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Session) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}
