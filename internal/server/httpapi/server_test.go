package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/common"
	"taskhub/internal/dbx"
	"taskhub/internal/logging"
	"taskhub/internal/server/config"
	"taskhub/internal/server/models"
	"taskhub/internal/server/repositories/repomanager"
	taskrepo "taskhub/internal/server/repositories/tasks"
	userrepo "taskhub/internal/server/repositories/users"
	"taskhub/internal/server/services"
)

// In-memory repositories so handler tests can run full request flows without
// a database.

type memUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byEmail: make(map[string]*models.User)}
}

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type memTasksRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Task
	seq  int
}

func newMemTasksRepo() *memTasksRepo {
	return &memTasksRepo{byID: make(map[string]*models.Task)}
}

func (r *memTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.byID[t.ID] = &cp
	return t, nil
}

func (r *memTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTasksRepo) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Task
	for _, t := range r.byID {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTasksRepo) Update(ctx context.Context, t *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[t.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.byID[t.ID] = &cp
	return t, nil
}

func (r *memTasksRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memTasksRepo) DeleteCompleted(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.byID {
		if t.UserID == userID && t.Completed {
			delete(r.byID, id)
		}
	}
	return nil
}

type memRepoManager struct {
	users *memUsersRepo
	tasks *memTasksRepo
}

func (m *memRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) userrepo.Repository              { return m.users }
func (m *memRepoManager) Tasks(db dbx.DBTX) taskrepo.Repository              { return m.tasks }

var _ repomanager.RepositoryManager = (*memRepoManager)(nil)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
	}
	rm := &memRepoManager{users: newMemUsersRepo(), tasks: newMemTasksRepo()}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", logger,
		services.NewUserService(nil, rm, cfg),
		services.NewTaskService(nil, rm),
		cfg.SecretKey)
}
