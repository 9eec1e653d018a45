// Package httpapi exposes the REST surface of TaskHub: two public auth
// routes and the bearer-token-protected task routes. It translates service
// sentinel errors into HTTP statuses with {"msg": ...} bodies.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"taskhub/internal/logging"
	"taskhub/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the route table. "/tasks/clear" is registered before
// "/tasks/{id}" so the bulk-clear route is not captured by the id pattern.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)

	tasks := r.PathPrefix("/tasks").Subrouter()
	tasks.Use(s.withAuth)
	tasks.HandleFunc("", s.listTasks).Methods(http.MethodGet)
	tasks.HandleFunc("", s.createTask).Methods(http.MethodPost)
	tasks.HandleFunc("/clear", s.clearCompleted).Methods(http.MethodDelete)
	tasks.HandleFunc("/{id}", s.updateTask).Methods(http.MethodPut)
	tasks.HandleFunc("/{id}", s.deleteTask).Methods(http.MethodDelete)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
