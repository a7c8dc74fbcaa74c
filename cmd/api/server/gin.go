package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"readin/cmd/api/di"
	"readin/internal/adapter/gin/middleware"
	ginrouter "readin/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	handlers di.Handlers,
	rateLimiter *middleware.RateLimiter,
	jwtSecret string,
	ginAddr string,
	l *zap.Logger,
) *http.Server {
	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(ginrouter.Handlers{
		Auth:     handlers.Auth,
		User:     handlers.User,
		Book:     handlers.Book,
		Favorite: handlers.Favorite,
	}, rateLimiter, jwtSecret, l)

	l.Info("Gin REST API configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
