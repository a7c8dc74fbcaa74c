package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"readin/internal/adapter/gin/middleware"
	"readin/internal/usecase/book"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	uc  book.Usecase
	log *zap.Logger
}

// NewBookHandler creates a new BookHandler instance.
func NewBookHandler(uc book.Usecase, log *zap.Logger) *BookHandler {
	return &BookHandler{
		uc:  uc,
		log: log,
	}
}

// CreateBookRequest represents the HTTP request body for creating a book
type CreateBookRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Author   string `json:"author" binding:"max=200"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"max=100"`
}

// UpdateBookRequest represents the HTTP request body for updating a book
type UpdateBookRequest struct {
	Title    string `json:"title" binding:"omitempty,min=1,max=200"`
	Author   string `json:"author" binding:"max=200"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"max=100"`
}

// BookResponse represents the HTTP response for book data
type BookResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Category string `json:"category"`
	UserID   int64  `json:"user_id"`
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create book request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	actorID := middleware.UserID(c)
	h.log.Info("CreateBook request", zap.String("title", req.Title), zap.Int64("actor_id", actorID))

	resp, err := h.uc.CreateBook(c.Request.Context(), book.CreateBookRequest{
		ActorID:  actorID,
		Title:    req.Title,
		Author:   req.Author,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.log.Warn("CreateBook failed", zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": resp.ID,
	})
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, h.log)
	if !ok {
		return
	}

	resp, err := h.uc.GetBook(c.Request.Context(), book.GetBookRequest{ID: id})
	if err != nil {
		h.log.Warn("GetBook failed", zap.Int64("id", id), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(resp))
}

// ListBooks handles GET /books.
// The whole catalog is returned as a JSON array.
func (h *BookHandler) ListBooks(c *gin.Context) {
	resp, err := h.uc.ListBooks(c.Request.Context())
	if err != nil {
		h.log.Error("ListBooks failed", zap.Error(err))
		writeError(c, err)
		return
	}

	books := make([]BookResponse, len(resp.Books))
	for i, b := range resp.Books {
		books[i] = *toBookResponse(&b)
	}

	c.JSON(http.StatusOK, books)
}

// UpdateBook handles PUT /books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, h.log)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update book request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	actorID := middleware.UserID(c)
	h.log.Info("UpdateBook request", zap.Int64("id", id), zap.Int64("actor_id", actorID))

	resp, err := h.uc.UpdateBook(c.Request.Context(), book.UpdateBookRequest{
		ID:       id,
		ActorID:  actorID,
		Title:    req.Title,
		Author:   req.Author,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.log.Warn("UpdateBook failed", zap.Int64("id", id), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": resp.ID,
	})
}

// DeleteBook handles DELETE /books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, h.log)
	if !ok {
		return
	}

	actorID := middleware.UserID(c)
	h.log.Info("DeleteBook request", zap.Int64("id", id), zap.Int64("actor_id", actorID))

	resp, err := h.uc.DeleteBook(c.Request.Context(), book.DeleteBookRequest{
		ID:      id,
		ActorID: actorID,
	})
	if err != nil {
		h.log.Warn("DeleteBook failed", zap.Int64("id", id), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": resp.ID,
	})
}

func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Content:  b.Content,
		Category: b.Category,
		UserID:   b.UserID,
	}
}
