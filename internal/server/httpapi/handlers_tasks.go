package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"taskhub/internal/common"
	"taskhub/internal/server/models"
	"taskhub/internal/server/services"
)

type createTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
}

// updateTaskRequest uses pointer fields so that absent keys are
// distinguishable from zero values: only supplied fields are applied.
type updateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Priority    *models.Priority `json:"priority"`
	Completed   *bool            `json:"completed"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context(), requestUserID(r))
	if err != nil {
		s.logger.Error(r.Context(), "list tasks failed", "error", err)
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), requestUserID(r), req.Title, req.Description, req.Priority)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeMsg(w, http.StatusBadRequest, "Title is required")
			return
		}
		s.logger.Error(r.Context(), "create task failed", "error", err)
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := s.tasks.Update(r.Context(), requestUserID(r), mux.Vars(r)["id"], services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	err := s.tasks.Remove(r.Context(), requestUserID(r), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeMsg(w, http.StatusBadRequest, "Invalid task ID")
			return
		}
		s.writeTaskError(w, r, err)
		return
	}
	writeMsg(w, http.StatusOK, "Task removed")
}

func (s *Server) clearCompleted(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.ClearCompleted(r.Context(), requestUserID(r)); err != nil {
		s.logger.Error(r.Context(), "clear completed failed", "error", err)
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMsg(w, http.StatusOK, "Cleared completed tasks")
}

// writeTaskError maps shared task-operation failures. An ownership mismatch
// answers 401 rather than 403: the deployed clients key their
// "drop token and re-login" behavior off 401, so the historical mapping is
// part of the wire contract.
func (s *Server) writeTaskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeMsg(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, common.ErrorForbidden):
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, common.ErrorValidation):
		writeMsg(w, http.StatusBadRequest, "Invalid task data")
	default:
		s.logger.Error(r.Context(), "task operation failed", "error", err)
		writeMsg(w, http.StatusInternalServerError, "Server error")
	}
}
