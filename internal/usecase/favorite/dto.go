package favorite

import "readin/internal/usecase/book"

// AddFavoriteRequest represents the request payload for saving a book.
type AddFavoriteRequest struct {
	UserID int64
	BookID int64
}

// AddFavoriteResponse represents the response payload after favoriting.
type AddFavoriteResponse struct {
	BookID int64
}

// RemoveFavoriteRequest represents the request payload for unfavoriting.
type RemoveFavoriteRequest struct {
	UserID int64
	BookID int64
}

// RemoveFavoriteResponse represents the response payload after unfavoriting.
type RemoveFavoriteResponse struct {
	BookID int64
}

// ListFavoritesRequest represents the request payload for listing favorites.
type ListFavoritesRequest struct {
	UserID int64
}

// ListFavoritesResponse carries the caller's favorite books.
type ListFavoritesResponse struct {
	Books []book.Book
}
