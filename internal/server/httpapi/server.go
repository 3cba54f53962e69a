package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mvberkel/tripdiary/internal/logging"
)

// Server runs the API over net/http and shuts down gracefully when the
// context is cancelled.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

func NewServer(addr string, api *API, logger logging.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           api.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info(ctx, "http server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
