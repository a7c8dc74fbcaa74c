package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"readin/cmd/api/infrastructure"
	"readin/internal/adapter/cache"
	"readin/internal/adapter/db/postgres"
	ginhandler "readin/internal/adapter/gin/handler"
	"readin/internal/adapter/gin/middleware"
	"readin/internal/adapter/repository/cached"
	"readin/internal/config"
	"readin/internal/usecase/auth"
	"readin/internal/usecase/book"
	"readin/internal/usecase/favorite"
	"readin/internal/usecase/user"
	redisclient "readin/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	AuthUC      auth.Usecase
	UserUC      user.Usecase
	BookUC      book.Usecase
	FavoriteUC  favorite.Usecase
	RateLimiter *middleware.RateLimiter
	Handlers    Handlers
}

// Handlers groups the HTTP handlers built by the container.
type Handlers struct {
	Auth     *ginhandler.AuthHandler
	User     *ginhandler.UserHandler
	Book     *ginhandler.BookHandler
	Favorite *ginhandler.FavoriteHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize cache layer
	bookCache := cache.NewRedisBookCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)

	// Initialize repositories
	userRepo := postgres.NewUserRepoPG(db, l)
	bookDBRepo := postgres.NewBookRepoPG(db, l)
	bookRepo := cached.NewCachedBookRepository(bookDBRepo, bookCache, l)
	favoriteRepo := postgres.NewFavoriteRepoPG(db, l)

	// Initialize use cases
	authUC := auth.New(userRepo, auth.Config{
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
		BcryptCost: cfg.Auth.BcryptCost,
	}, l)
	userUC := user.New(userRepo, l)
	bookUC := book.New(bookRepo, l)
	favoriteUC := favorite.New(favoriteRepo, bookRepo, l)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(
		rdb.Client,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)

	handlers := Handlers{
		Auth:     ginhandler.NewAuthHandler(authUC, l),
		User:     ginhandler.NewUserHandler(userUC, l),
		Book:     ginhandler.NewBookHandler(bookUC, l),
		Favorite: ginhandler.NewFavoriteHandler(favoriteUC, l),
	}

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		AuthUC:      authUC,
		UserUC:      userUC,
		BookUC:      bookUC,
		FavoriteUC:  favoriteUC,
		RateLimiter: rateLimiter,
		Handlers:    handlers,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
