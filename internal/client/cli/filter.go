package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskhub/internal/client/view"
)

const dateLayout = "2006-01-02"

// setFilter mutates the view filter from REPL arguments. Usage:
//
//	filter priority High|Medium|Low|All
//	filter status All|Completed|Pending
//	filter from 2024-03-01
//	filter to 2024-03-31
//	filter clear
//
// Changing the filter resets paging to the first page.
func (a *App) setFilter(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: filter priority|status|from|to|clear ...")
		return
	}

	switch args[0] {
	case "clear":
		a.filter = view.Filter{}

	case "priority":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: filter priority High|Medium|Low|All")
			return
		}
		if strings.EqualFold(args[1], string(view.PriorityAll)) {
			a.filter.Priority = view.PriorityAll
			break
		}
		p := parsePriority(args[1])
		if p == "" {
			fmt.Fprintf(a.out, "Unknown priority: %s\n", args[1])
			return
		}
		a.filter.Priority = p

	case "status":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: filter status All|Completed|Pending")
			return
		}
		switch strings.ToLower(args[1]) {
		case "all":
			a.filter.Status = view.StatusAll
		case "completed":
			a.filter.Status = view.StatusCompleted
		case "pending":
			a.filter.Status = view.StatusPending
		default:
			fmt.Fprintf(a.out, "Unknown status: %s\n", args[1])
			return
		}

	case "from", "to":
		if len(args) < 2 {
			fmt.Fprintf(a.out, "Usage: filter %s YYYY-MM-DD\n", args[0])
			return
		}
		day, err := time.Parse(dateLayout, args[1])
		if err != nil {
			fmt.Fprintf(a.out, "Invalid date: %s\n", args[1])
			return
		}
		if args[0] == "from" {
			a.filter.From = &day
		} else {
			a.filter.To = &day
		}

	default:
		fmt.Fprintf(a.out, "Unknown filter: %s\n", args[0])
		return
	}

	a.page = 1
	a.render()
}

// setPage jumps to a page of the cached view. Out of range values are
// clamped during rendering.
func (a *App) setPage(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: page <number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Invalid page: %s\n", args[0])
		return
	}
	a.page = n
	a.render()
}

func (a *App) setPageSize(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: pagesize <number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintf(a.out, "Invalid page size: %s\n", args[0])
		return
	}
	a.pageSize = n
	a.page = 1
	a.render()
}
