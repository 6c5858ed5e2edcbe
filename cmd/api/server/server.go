package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/jaipal-12/villageconnect/cmd/api/di"
	"github.com/jaipal-12/villageconnect/internal/config"
)

// Server holds the HTTP server serving the REST API.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance over the container's handlers.
func New(cfg *config.Config, l *zap.Logger, container *di.Container) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupGinServer(container, ":"+cfg.App.HTTPPort, l),
	}
}

// Start runs the HTTP server until it is shut down or fails.
func (s *Server) Start() error {
	s.Logger.Info("REST API running", zap.String("address", s.HTTP.Addr))
	return s.HTTP.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.HTTP == nil {
		return nil
	}
	return s.HTTP.Shutdown(ctx)
}
