package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"readin/internal/adapter/gin/middleware"
	"readin/internal/usecase/favorite"
)

// FavoriteHandler handles HTTP requests for favorites management.
type FavoriteHandler struct {
	uc  favorite.Usecase
	log *zap.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler instance.
func NewFavoriteHandler(uc favorite.Usecase, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:  uc,
		log: log,
	}
}

// ListFavoritesResponse represents the HTTP response for the favorites list
type ListFavoritesResponse struct {
	Books []BookResponse `json:"books"`
}

// AddFavorite handles POST /favorites/:bookID
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	bookID, ok := parseBookIDParam(c, h.log)
	if !ok {
		return
	}

	userID := middleware.UserID(c)
	h.log.Info("AddFavorite request", zap.Int64("user_id", userID), zap.Int64("book_id", bookID))

	resp, err := h.uc.AddFavorite(c.Request.Context(), favorite.AddFavoriteRequest{
		UserID: userID,
		BookID: bookID,
	})
	if err != nil {
		h.log.Warn("AddFavorite failed", zap.Int64("book_id", bookID), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"book_id": resp.BookID,
	})
}

// RemoveFavorite handles DELETE /favorites/:bookID
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	bookID, ok := parseBookIDParam(c, h.log)
	if !ok {
		return
	}

	userID := middleware.UserID(c)
	h.log.Info("RemoveFavorite request", zap.Int64("user_id", userID), zap.Int64("book_id", bookID))

	resp, err := h.uc.RemoveFavorite(c.Request.Context(), favorite.RemoveFavoriteRequest{
		UserID: userID,
		BookID: bookID,
	})
	if err != nil {
		h.log.Warn("RemoveFavorite failed", zap.Int64("book_id", bookID), zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"book_id": resp.BookID,
	})
}

// ListFavorites handles GET /favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID := middleware.UserID(c)

	resp, err := h.uc.ListFavorites(c.Request.Context(), favorite.ListFavoritesRequest{
		UserID: userID,
	})
	if err != nil {
		h.log.Error("ListFavorites failed", zap.Int64("user_id", userID), zap.Error(err))
		writeError(c, err)
		return
	}

	books := make([]BookResponse, len(resp.Books))
	for i, b := range resp.Books {
		books[i] = *toBookResponse(&b)
	}

	c.JSON(http.StatusOK, ListFavoritesResponse{Books: books})
}

// parseBookIDParam extracts the numeric :bookID route parameter.
func parseBookIDParam(c *gin.Context, log *zap.Logger) (int64, bool) {
	idStr := c.Param("bookID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("Invalid book ID parameter", zap.String("book_id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Book ID must be a valid number",
		})
		return 0, false
	}
	return id, true
}
