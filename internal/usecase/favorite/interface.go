package favorite

import "context"

// Usecase defines the interface for favorites management.
type Usecase interface {
	AddFavorite(ctx context.Context, in AddFavoriteRequest) (*AddFavoriteResponse, error)
	RemoveFavorite(ctx context.Context, in RemoveFavoriteRequest) (*RemoveFavoriteResponse, error)
	ListFavorites(ctx context.Context, in ListFavoritesRequest) (*ListFavoritesResponse, error)
}
