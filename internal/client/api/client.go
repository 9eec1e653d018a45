// Package api implements the HTTP client for the TaskHub server. Every task
// call carries the session's bearer token; a 401 answer invalidates the
// local session so the CLI falls back to the login prompt.
package api

import (
	"context"

	"taskhub/internal/client/models"
)

// TaskUpdate carries a partial task update. Nil fields are omitted from the
// request body and therefore keep their server-side values.
type TaskUpdate struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Priority    *models.Priority `json:"priority,omitempty"`
	Completed   *bool            `json:"completed,omitempty"`
}

// Client is the remote API surface used by the CLI.
type Client interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, title, description string, priority models.Priority) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) error
}

// TokenStore is the durable session storage the client reads its credential
// from and wipes when the server rejects it.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
