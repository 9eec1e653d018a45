package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"taskhub/internal/client/api"
	"taskhub/internal/client/models"
	"taskhub/internal/client/view"
	"taskhub/internal/common"
)

// reportError prints an API error and drops local auth state when the
// server rejected the token.
func (a *App) reportError(err error) {
	if errors.Is(err, common.ErrorUnauthorized) {
		a.sessionExpired()
		fmt.Fprintln(a.out, "Session expired, please log in again")
		return
	}
	log.Printf("Error: %s", err.Error())
}

// refresh reloads the task list from the server into the local cache.
func (a *App) refresh(ctx context.Context) error {
	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		return err
	}
	a.tasks = tasks
	return nil
}

func (a *App) list(ctx context.Context) {
	if err := a.refresh(ctx); err != nil {
		a.reportError(err)
		return
	}
	a.render()
}

// render prints the current page of the filtered view from the cache.
func (a *App) render() {
	filtered := view.Apply(a.tasks, a.filter)
	page := view.Paginate(filtered, a.page, a.pageSize)
	a.page = page.Number

	if page.TotalTasks == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return
	}

	for _, t := range page.Tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %-6s %s\n", mark, t.Priority, t.Title)
		if t.Description != "" {
			fmt.Fprintf(a.out, "      %s\n", t.Description)
		}
		fmt.Fprintf(a.out, "      id: %s  created: %s\n", t.ID, t.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d tasks)\n", page.Number, page.TotalPages, page.TotalTasks)
}

func (a *App) add(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	priority, err := a.promptPriority()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	task, err := a.api.CreateTask(ctx, title, description, priority)
	if err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintf(a.out, "Added task %s\n", task.ID)
}

// promptPriority reads a priority name, defaulting to Low on empty input.
func (a *App) promptPriority() (models.Priority, error) {
	text, err := getSimpleText(a.reader, "Enter priority (High/Medium/Low, default Low)", a.out)
	if err != nil {
		return "", err
	}
	if text == "" {
		return models.PriorityLow, nil
	}
	p := parsePriority(text)
	if p == "" {
		return "", fmt.Errorf("unknown priority %q", text)
	}
	return p, nil
}

func parsePriority(s string) models.Priority {
	switch strings.ToLower(s) {
	case "high":
		return models.PriorityHigh
	case "medium":
		return models.PriorityMedium
	case "low":
		return models.PriorityLow
	}
	return ""
}

func (a *App) edit(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Enter task id to edit", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	upd := api.TaskUpdate{}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if title != "" {
		upd.Title = &title
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if description != "" {
		upd.Description = &description
	}

	text, err := getSimpleText(a.reader, "New priority (empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if text != "" {
		p := parsePriority(text)
		if p == "" {
			log.Printf("unknown priority %q", text)
			return
		}
		upd.Priority = &p
	}

	if upd.Title == nil && upd.Description == nil && upd.Priority == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return
	}

	if _, err := a.api.UpdateTask(ctx, id, upd); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Updated")
}

// setCompleted flips the completion flag of a task picked by id.
func (a *App) setCompleted(ctx context.Context, completed bool) {
	id, err := getSimpleText(a.reader, "Enter task id", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if _, err := a.api.UpdateTask(ctx, id, api.TaskUpdate{Completed: &completed}); err != nil {
		a.reportError(err)
		return
	}
	if completed {
		fmt.Fprintln(a.out, "Marked as done")
	} else {
		fmt.Fprintln(a.out, "Marked as pending")
	}
}

func (a *App) delete(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Enter task id to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Task removed")
}

func (a *App) clearCompleted(ctx context.Context) {
	if err := a.api.ClearCompleted(ctx); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Cleared completed tasks")
}

func (a *App) summary(ctx context.Context) {
	if err := a.refresh(ctx); err != nil {
		a.reportError(err)
		return
	}
	s := view.Summarize(a.tasks)
	fmt.Fprintf(a.out, "Total: %d  Completed: %d  Pending: %d\n", s.Total, s.Completed, s.Pending)
}
