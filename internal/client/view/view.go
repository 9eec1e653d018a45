// Package view derives display pages from a task list. Everything here is
// pure: filtering, ordering and pagination never touch the server, so the
// CLI can re-render instantly after a filter change.
package view

import (
	"sort"
	"time"

	"taskhub/internal/client/models"
)

// Status filters tasks by completion state.
type Status string

const (
	StatusAll       Status = "All"
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
)

// PriorityAll disables the priority filter.
const PriorityAll models.Priority = "All"

// Filter selects which tasks appear in the view. Zero value selects
// everything.
type Filter struct {
	Priority models.Priority
	Status   Status
	From     *time.Time
	To       *time.Time
}

// Page is one screen of tasks plus enough metadata to render a pager.
type Page struct {
	Tasks      []*models.Task
	Number     int
	TotalPages int
	TotalTasks int
}

// Summary counts tasks by completion state.
type Summary struct {
	Total     int
	Completed int
	Pending   int
}

// Matches reports whether the task passes the filter. The To date is
// inclusive of the whole day it names.
func (f Filter) Matches(t *models.Task) bool {
	if f.Priority != "" && f.Priority != PriorityAll && t.Priority != f.Priority {
		return false
	}
	switch f.Status {
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	case StatusPending:
		if t.Completed {
			return false
		}
	}
	if f.From != nil && t.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !t.CreatedAt.Before(f.To.Add(24*time.Hour)) {
		return false
	}
	return true
}

// Apply filters and orders tasks for display. Completed tasks come first,
// then higher priority; ties keep the input order.
func Apply(tasks []*models.Task, f Filter) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return out[i].Completed
		}
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

// Paginate slices an ordered task list into the requested page. The page
// number is clamped into the valid range, so callers can blindly increment
// and decrement it.
func Paginate(tasks []*models.Task, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(tasks) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(tasks) {
		start = len(tasks)
	}
	if end > len(tasks) {
		end = len(tasks)
	}
	return Page{
		Tasks:      tasks[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalTasks: len(tasks),
	}
}

// Summarize counts the full task list, ignoring any filter.
func Summarize(tasks []*models.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	return s
}
