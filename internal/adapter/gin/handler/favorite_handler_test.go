package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"readin/internal/adapter/gin/handler"
	"readin/internal/adapter/gin/middleware"
	"readin/internal/usecase/book"
	"readin/internal/usecase/favorite"
	apperrors "readin/pkg/errors"
)

// MockFavoriteUsecase is a mock implementation of the favorite Usecase interface.
type MockFavoriteUsecase struct {
	mock.Mock
}

func (m *MockFavoriteUsecase) AddFavorite(ctx context.Context, in favorite.AddFavoriteRequest) (*favorite.AddFavoriteResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favorite.AddFavoriteResponse), args.Error(1)
}

func (m *MockFavoriteUsecase) RemoveFavorite(ctx context.Context, in favorite.RemoveFavoriteRequest) (*favorite.RemoveFavoriteResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favorite.RemoveFavoriteResponse), args.Error(1)
}

func (m *MockFavoriteUsecase) ListFavorites(ctx context.Context, in favorite.ListFavoritesRequest) (*favorite.ListFavoritesResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favorite.ListFavoritesResponse), args.Error(1)
}

func setupFavoriteRouter(t *testing.T) (*gin.Engine, *MockFavoriteUsecase) {
	gin.SetMode(gin.TestMode)

	log := zaptest.NewLogger(t)
	mockUC := new(MockFavoriteUsecase)
	h := handler.NewFavoriteHandler(mockUC, log)
	requireAuth := middleware.RequireAuth(testJWTSecret, log)

	router := gin.New()
	favorites := router.Group("/favorites", requireAuth)
	favorites.GET("", h.ListFavorites)
	favorites.POST("/:bookID", h.AddFavorite)
	favorites.DELETE("/:bookID", h.RemoveFavorite)
	return router, mockUC
}

func TestFavoriteHandler_AddFavorite_Success(t *testing.T) {
	router, mockUC := setupFavoriteRouter(t)

	mockUC.On("AddFavorite", mock.Anything, favorite.AddFavoriteRequest{
		UserID: 7,
		BookID: 2,
	}).Return(&favorite.AddFavoriteResponse{BookID: 2}, nil)

	req := httptest.NewRequest(http.MethodPost, "/favorites/2", nil)
	req.Header.Set("Authorization", authHeader(t, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp["book_id"])

	mockUC.AssertExpectations(t)
}

func TestFavoriteHandler_AddFavorite_Duplicate(t *testing.T) {
	router, mockUC := setupFavoriteRouter(t)

	mockUC.On("AddFavorite", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAlreadyExistsError("favorite", "book already favorited"))

	req := httptest.NewRequest(http.MethodPost, "/favorites/2", nil)
	req.Header.Set("Authorization", authHeader(t, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUC.AssertExpectations(t)
}

func TestFavoriteHandler_AddFavorite_MalformedID(t *testing.T) {
	router, mockUC := setupFavoriteRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/favorites/abc", nil)
	req.Header.Set("Authorization", authHeader(t, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "AddFavorite")
}

func TestFavoriteHandler_AddFavorite_Unauthenticated(t *testing.T) {
	router, mockUC := setupFavoriteRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/favorites/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUC.AssertNotCalled(t, "AddFavorite")
}

func TestFavoriteHandler_RemoveFavorite_NotFavorited(t *testing.T) {
	router, mockUC := setupFavoriteRouter(t)

	mockUC.On("RemoveFavorite", mock.Anything, favorite.RemoveFavoriteRequest{
		UserID: 7,
		BookID: 2,
	}).Return(nil, apperrors.NewNotFoundError("favorite", "book is not in favorites"))

	req := httptest.NewRequest(http.MethodDelete, "/favorites/2", nil)
	req.Header.Set("Authorization", authHeader(t, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUC.AssertExpectations(t)
}

func TestFavoriteHandler_ListFavorites(t *testing.T) {
	router, mockUC := setupFavoriteRouter(t)

	mockUC.On("ListFavorites", mock.Anything, favorite.ListFavoritesRequest{UserID: 7}).
		Return(&favorite.ListFavoritesResponse{
			Books: []book.Book{
				{ID: 2, Title: "Book 2", Author: "Author 2"},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("Authorization", authHeader(t, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.ListFavoritesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "Book 2", resp.Books[0].Title)

	mockUC.AssertExpectations(t)
}
