package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.email != "" {
		return fmt.Sprintf("(%s) ", a.email)
	}
	if a.loggedIn {
		return "(logged in) "
	}
	return ""
}

// Root runs the read-eval-print loop. It reads a line, takes the first
// token as the command, and dispatches to methods on the App. The loop
// exits on EOF or when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to TaskHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "taskhub %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: (l)ist, add, edit, done, undo, delete, clear, summary, filter, page, next, prev, pagesize, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "add":
			a.add(ctx)
		case "l", "list":
			a.list(ctx)
		case "edit":
			a.edit(ctx)
		case "done":
			a.setCompleted(ctx, true)
		case "undo":
			a.setCompleted(ctx, false)
		case "delete":
			a.delete(ctx)
		case "clear":
			a.clearCompleted(ctx)
		case "summary":
			a.summary(ctx)
		case "filter":
			a.setFilter(args)
		case "page":
			a.setPage(args)
		case "next":
			a.page++
			a.render()
		case "prev":
			a.page--
			a.render()
		case "pagesize":
			a.setPageSize(args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
