package repomanager

import (
	"context"
	"database/sql"

	"taskhub/internal/dbx"
	"taskhub/internal/server/repositories/tasks"
	"taskhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
