package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/haguru/userstub/internal/interfaces"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

type Server struct {
	Addr   string
	server *http.Server
	router chi.Router
	Logger interfaces.Logger
}

// NewServer creates a new Server instance listening on addr (host:port).
func NewServer(addr string, logger interfaces.Logger) interfaces.Server {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Addr:   addr,
		server: server,
		router: router,
		Logger: logger,
	}
}

// AddRoute registers handler for method and route.
func (s *Server) AddRoute(method, route string, handler func(w http.ResponseWriter, r *http.Request)) error {
	if method == "" || route == "" {
		return fmt.Errorf("method and route are required, got %q %q", method, route)
	}
	s.router.MethodFunc(method, route, handler)
	s.Logger.Info("Route added", "method", method, "route", route)
	return nil
}

// SetNotFound routes every request no registered route accepts to handler,
// whether the path is unknown or the method is not allowed on it.
func (s *Server) SetNotFound(handler func(w http.ResponseWriter, r *http.Request)) {
	s.router.NotFound(handler)
	s.router.MethodNotAllowed(handler)
}

// Use appends middlewares to the router. It must be called before AddRoute.
func (s *Server) Use(middlewares ...func(http.Handler) http.Handler) {
	s.router.Use(middlewares...)
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Wrap replaces the root handler with wrap applied to it.
func (s *Server) Wrap(wrap func(http.Handler) http.Handler) {
	s.server.Handler = wrap(s.server.Handler)
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
// It returns nil once the server has been shut down.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "address", s.Addr)
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("Stopping server", "address", s.Addr)
	return s.server.Shutdown(ctx)
}
