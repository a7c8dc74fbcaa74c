package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"readin/internal/adapter/gin/handler"
	"readin/internal/adapter/gin/middleware"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Book     *handler.BookHandler
	Favorite *handler.FavoriteHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	h Handlers,
	rateLimiter *middleware.RateLimiter,
	jwtSecret string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(rateLimiter.Handler())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "readin-api",
		})
	})

	requireAuth := middleware.RequireAuth(jwtSecret, log)

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	books := router.Group("/books")
	{
		books.GET("", h.Book.ListBooks)
		books.GET("/:id", h.Book.GetBook)
		books.POST("", requireAuth, h.Book.CreateBook)
		books.PUT("/:id", requireAuth, h.Book.UpdateBook)
		books.DELETE("/:id", requireAuth, h.Book.DeleteBook)
	}

	users := router.Group("/users", requireAuth)
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
	}

	favorites := router.Group("/favorites", requireAuth)
	{
		favorites.GET("", h.Favorite.ListFavorites)
		favorites.POST("/:bookID", h.Favorite.AddFavorite)
		favorites.DELETE("/:bookID", h.Favorite.RemoveFavorite)
	}

	return router
}
