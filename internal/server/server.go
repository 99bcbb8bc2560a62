// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/apps"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/config"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/logger"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/internal/common/observability"
	"github.com/Lorenzo-Biondi/FITSTIC-UI/pkg/registry"
)

// Server is the HTTP front door for the prediction applications.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
	port       int
}

// New assembles the route table and middleware chain for the given
// applications. obs may be nil; prediction metrics then only reach the
// Prometheus collectors.
func New(cfg config.HTTPConfig, applications []apps.App, reg *registry.AppRegistry, obs *observability.Observability, log logger.Logger) *Server {
	mux := http.NewServeMux()
	newHandlers(applications, reg, obs, log).register(mux)

	chain := Chain(
		RecoveryMiddleware(log),
		AccessLogMiddleware(log),
		CORSMiddleware(cfg.AllowedOrigins),
		TimeoutMiddleware(cfg.RequestTimeout()),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           chain(mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
		port:   cfg.Port,
	}
}

// Start blocks serving requests until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("http server starting", map[string]interface{}{
		"port": s.port,
	})

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop drains in-flight requests within the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server stopping", nil)
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the composed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
