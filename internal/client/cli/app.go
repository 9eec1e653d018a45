// Package cli implements the interactive TaskHub client. It keeps the last
// fetched task list in memory and derives pages from it locally, so paging
// and filtering do not hit the server.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"taskhub/internal/client/api"
	"taskhub/internal/client/config"
	"taskhub/internal/client/models"
	"taskhub/internal/client/session"
	"taskhub/internal/client/view"
)

const defaultPageSize = 5

type App struct {
	config   *config.Config
	api      api.Client
	session  api.TokenStore
	reader   *bufio.Reader
	out      io.Writer
	email    string
	loggedIn bool

	tasks    []*models.Task
	filter   view.Filter
	page     int
	pageSize int
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	sess, err := session.Open(ctx, c.SessionPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   c,
		api:      api.NewHTTPClient(c.ServerURL, sess),
		session:  sess,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		page:     1,
		pageSize: defaultPageSize,
	}

	token, err := sess.Token(ctx)
	if err != nil {
		return nil, err
	}
	a.loggedIn = token != ""

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if closer, ok := a.session.(io.Closer); ok {
			closer.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// sessionExpired resets local auth state after the server rejects the token.
func (a *App) sessionExpired() {
	a.loggedIn = false
	a.email = ""
	a.tasks = nil
}
