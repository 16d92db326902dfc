package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fstr-project/pereval/internal/logging"
)

// Server wraps the HTTP server for the submitData API.
type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	handler         http.Handler
}

// NewServer wires handlers and routes for the given service.
func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger, passes PassOps) (*Server, error) {
	handlers := NewHandlers(passes, l)
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
		handler:         SetupRoutes(handlers),
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
