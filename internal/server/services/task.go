package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/common"
	"taskhub/internal/server/models"
	"taskhub/internal/server/repositories/repomanager"
)

// TaskUpdate carries the fields of a partial update. A nil field means
// "leave unchanged"; toggling Completed also sets or clears CompletedAt.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Completed   *bool
}

// TaskService implements the per-user task operations. Every method takes the
// authenticated caller's user id and enforces ownership before any mutation.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// NewTaskService constructs a TaskService over the given repositories.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: time.Now}
}

// ownsTask is the single ownership predicate used by every mutating
// operation. Task reads are already scoped by user id in the repository.
func ownsTask(userID string, task *models.Task) bool {
	return task.UserID == userID
}

// List returns all tasks owned by userID, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	tasks, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return tasks, nil
}

// Create stores a new task for userID. Title is required; priority defaults
// to Low when omitted and must be a known value when supplied.
func (s *TaskService) Create(ctx context.Context, userID, title, description string, priority models.Priority) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}
	if priority == "" {
		priority = models.PriorityLow
	}
	if !priority.Valid() {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    priority,
	}
	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return task, nil
}

// Update applies a partial update to the task. Fields absent from upd keep
// their prior values. Toggling Completed maintains the invariant
// completed == (completedAt != nil).
func (s *TaskService) Update(ctx context.Context, userID, taskID string, upd TaskUpdate) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if !ownsTask(userID, task) {
		return nil, common.ErrorForbidden
	}

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, common.ErrorValidation
		}
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Priority != nil {
		if !upd.Priority.Valid() {
			return nil, common.ErrorValidation
		}
		task.Priority = *upd.Priority
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
		if *upd.Completed {
			now := s.now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	task, err = repo.Update(ctx, task)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return task, nil
}

// Remove deletes a single task. The id must be a well-formed store
// identifier; then not-found and ownership rules apply as in Update.
func (s *TaskService) Remove(ctx context.Context, userID, taskID string) error {
	if uuid.Validate(taskID) != nil {
		return common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	if !ownsTask(userID, task) {
		return common.ErrorForbidden
	}

	if err := repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// ClearCompleted deletes every completed task owned by userID. Running it
// again immediately is a no-op.
func (s *TaskService) ClearCompleted(ctx context.Context, userID string) error {
	repo := s.repomanager.Tasks(s.db)

	if err := repo.DeleteCompleted(ctx, userID); err != nil {
		return common.ErrorInternal
	}
	return nil
}
