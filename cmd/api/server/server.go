package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"readin/cmd/api/di"
	"readin/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	ginAddr := ":" + cfg.App.HTTPPort

	return &Server{
		Config: cfg,
		Logger: l,
		Gin:    SetupGinServer(c.Handlers, c.RateLimiter, cfg.Auth.JWTSecret, ginAddr, l),
	}
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	s.Logger.Info("REST API running", zap.String("address", s.Gin.Addr))

	if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
