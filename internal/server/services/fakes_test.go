package services

import (
	"context"
	"database/sql"

	"taskhub/internal/dbx"
	"taskhub/internal/server/models"
	taskrepo "taskhub/internal/server/repositories/tasks"
	userrepo "taskhub/internal/server/repositories/users"
	"taskhub/internal/server/repositories/repomanager"
)

// fakeRepoManager vends the configured fake repositories regardless of the
// DBTX handed in; services under test may pass a nil *sql.DB.
type fakeRepoManager struct {
	users userrepo.Repository
	tasks taskrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) userrepo.Repository              { return m.users }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) taskrepo.Repository              { return m.tasks }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-created"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeTasksRepo struct {
	createErr error
	getOut    *models.Task
	getErr    error
	listOut   []*models.Task
	listErr   error
	updateErr error
	deleteErr error

	clearErr   error
	clearCalls int

	lastCreated *models.Task
	lastUpdated *models.Task
	lastDeleted string
}

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	f.lastCreated = t
	if f.createErr != nil {
		return nil, f.createErr
	}
	t.ID = "t-created"
	return t, nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTasksRepo) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, t *models.Task) (*models.Task, error) {
	f.lastUpdated = t
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return t, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
	f.lastDeleted = id
	return f.deleteErr
}

func (f *fakeTasksRepo) DeleteCompleted(ctx context.Context, userID string) error {
	f.clearCalls++
	return f.clearErr
}
