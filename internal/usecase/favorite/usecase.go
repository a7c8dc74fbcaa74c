package favorite

import (
	"context"

	"go.uber.org/zap"

	bookdomain "readin/internal/domain/book"
	"readin/internal/usecase/book"
	apperrors "readin/pkg/errors"
)

// Repository defines the interface for favorite data access operations.
type Repository interface {
	Add(ctx context.Context, userID, bookID int64) error                       // Insert a favorite row
	Remove(ctx context.Context, userID, bookID int64) error                    // Delete a favorite row
	Exists(ctx context.Context, userID, bookID int64) (bool, error)            // Check for an existing pair
	ListBooks(ctx context.Context, userID int64) ([]bookdomain.Book, error)    // Books the user has favorited
}

// usecase implements the business logic for favorites management.
type usecase struct {
	repo  Repository
	books book.Repository
	log   *zap.Logger
}

// New creates a new favorite usecase. The book repository is used to reject
// favorites of books that do not exist.
func New(r Repository, books book.Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, books: books, log: log}
}

// AddFavorite saves a book for the user. Favoriting the same book twice is
// rejected, keeping the (user, book) pair unique.
func (uc *usecase) AddFavorite(ctx context.Context, in AddFavoriteRequest) (*AddFavoriteResponse, error) {
	uc.log.Info("adding favorite", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID))

	if in.UserID <= 0 || in.BookID <= 0 {
		return nil, apperrors.NewValidationError("id", "must be a positive number")
	}

	if _, err := uc.books.GetByID(ctx, in.BookID); err != nil {
		uc.log.Warn("favorite target not found", zap.Int64("book_id", in.BookID), zap.Error(err))
		return nil, err
	}

	exists, err := uc.repo.Exists(ctx, in.UserID, in.BookID)
	if err != nil {
		uc.log.Error("failed to check favorite", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID), zap.Error(err))
		return nil, err
	}
	if exists {
		uc.log.Warn("book already favorited", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID))
		return nil, apperrors.NewAlreadyExistsError("favorite", "book already favorited")
	}

	if err := uc.repo.Add(ctx, in.UserID, in.BookID); err != nil {
		uc.log.Error("failed to add favorite", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID), zap.Error(err))
		return nil, err
	}

	return &AddFavoriteResponse{BookID: in.BookID}, nil
}

// RemoveFavorite removes a saved book. Removing a book that was never
// favorited answers not found.
func (uc *usecase) RemoveFavorite(ctx context.Context, in RemoveFavoriteRequest) (*RemoveFavoriteResponse, error) {
	uc.log.Info("removing favorite", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID))

	if in.UserID <= 0 || in.BookID <= 0 {
		return nil, apperrors.NewValidationError("id", "must be a positive number")
	}

	exists, err := uc.repo.Exists(ctx, in.UserID, in.BookID)
	if err != nil {
		uc.log.Error("failed to check favorite", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID), zap.Error(err))
		return nil, err
	}
	if !exists {
		uc.log.Warn("favorite not found", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID))
		return nil, apperrors.NewNotFoundError("favorite", "book is not in favorites")
	}

	if err := uc.repo.Remove(ctx, in.UserID, in.BookID); err != nil {
		uc.log.Error("failed to remove favorite", zap.Int64("user_id", in.UserID), zap.Int64("book_id", in.BookID), zap.Error(err))
		return nil, err
	}

	return &RemoveFavoriteResponse{BookID: in.BookID}, nil
}

// ListFavorites retrieves the books the user has favorited.
func (uc *usecase) ListFavorites(ctx context.Context, in ListFavoritesRequest) (*ListFavoritesResponse, error) {
	if in.UserID <= 0 {
		return nil, apperrors.NewValidationError("user_id", "must be a positive number")
	}

	domainBooks, err := uc.repo.ListBooks(ctx, in.UserID)
	if err != nil {
		uc.log.Error("failed to list favorites", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	books := make([]book.Book, len(domainBooks))
	for i, db := range domainBooks {
		books[i] = book.Book{
			ID:       db.ID,
			Title:    db.Title,
			Author:   db.Author,
			Content:  db.Content,
			Category: db.Category,
			UserID:   db.UserID,
		}
	}

	return &ListFavoritesResponse{Books: books}, nil
}
