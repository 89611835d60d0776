package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/securelups/securelups.co/internal/assessment/storage"
	"github.com/securelups/securelups.co/internal/web/adminauth"
	"github.com/securelups/securelups.co/internal/web/modules/admin"
	"github.com/securelups/securelups.co/internal/web/modules/public"
	"github.com/securelups/securelups.co/internal/web/modules/questionnaire"
	"github.com/securelups/securelups.co/internal/web/modules/results"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config carries the server composition inputs.
type Config struct {
	HTTPAddr      string
	Results       storage.ResultStore
	AdminPassword string
	SessionKey    []byte
}

// Server owns the HTTP listener lifecycle for the composed site.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer wires the feature modules and returns a ready-to-run server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Results == nil {
		return nil, errors.New("result store is required")
	}

	gate := adminauth.NewGate(cfg.AdminPassword, cfg.SessionKey)
	handler, err := Compose(
		public.New(),
		questionnaire.New(cfg.Results),
		results.New(cfg.Results),
		admin.New(gate, cfg.Results),
	)
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Handler exposes the composed root handler.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
