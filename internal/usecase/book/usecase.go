package book

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "readin/internal/domain/book"
	apperrors "readin/pkg/errors"
	"readin/pkg/validation"
)

// Repository defines the interface for book data access operations.
type Repository interface {
	Create(ctx context.Context, b *domain.Book) (int64, error)   // Create a new book
	GetByID(ctx context.Context, id int64) (*domain.Book, error) // Retrieve book by ID
	Update(ctx context.Context, b *domain.Book) (int64, error)   // Update existing book
	Delete(ctx context.Context, id int64) (int64, error)         // Delete book by ID
	List(ctx context.Context) ([]domain.Book, error)             // List all books
}

// usecase implements the business logic for the book catalog.
type usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new book usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validator.New()}
}

// CreateBook creates a new book owned by the acting user.
func (uc *usecase) CreateBook(ctx context.Context, in CreateBookRequest) (*CreateBookResponse, error) {
	uc.log.Info("creating book", zap.String("title", in.Title), zap.Int64("owner_id", in.ActorID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.FormatError(err)
	}

	id, err := uc.repo.Create(ctx, &domain.Book{
		Title:    in.Title,
		Author:   in.Author,
		Content:  in.Content,
		Category: in.Category,
		UserID:   in.ActorID,
	})
	if err != nil {
		uc.log.Error("failed to create book", zap.Error(err))
		return nil, err
	}

	return &CreateBookResponse{ID: id}, nil
}

// GetBook retrieves a single book by ID.
func (uc *usecase) GetBook(ctx context.Context, in GetBookRequest) (*Book, error) {
	if in.ID <= 0 {
		uc.log.Warn("get book validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("id", "must be a positive number")
	}

	b, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to get book", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toDTO(b), nil
}

// UpdateBook updates a book. Only the owning user may change it; empty
// fields keep their stored values.
func (uc *usecase) UpdateBook(ctx context.Context, in UpdateBookRequest) (*UpdateBookResponse, error) {
	uc.log.Info("updating book", zap.Int64("id", in.ID), zap.Int64("actor_id", in.ActorID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.FormatError(err)
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Warn("book to update not found", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	if existing.UserID != in.ActorID {
		uc.log.Warn("update denied: not the owner", zap.Int64("id", in.ID), zap.Int64("actor_id", in.ActorID), zap.Int64("owner_id", existing.UserID))
		return nil, apperrors.NewForbiddenError("only the owner can modify this book")
	}

	if in.Title != "" {
		existing.Title = in.Title
	}
	if in.Author != "" {
		existing.Author = in.Author
	}
	if in.Content != "" {
		existing.Content = in.Content
	}
	if in.Category != "" {
		existing.Category = in.Category
	}

	id, err := uc.repo.Update(ctx, existing)
	if err != nil {
		uc.log.Error("failed to update book", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateBookResponse{ID: id}, nil
}

// DeleteBook deletes a book. Only the owning user may delete it.
func (uc *usecase) DeleteBook(ctx context.Context, in DeleteBookRequest) (*DeleteBookResponse, error) {
	uc.log.Info("deleting book", zap.Int64("id", in.ID), zap.Int64("actor_id", in.ActorID))

	if in.ID <= 0 {
		return nil, apperrors.NewValidationError("id", "must be a positive number")
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Warn("book to delete not found", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	if existing.UserID != in.ActorID {
		uc.log.Warn("delete denied: not the owner", zap.Int64("id", in.ID), zap.Int64("actor_id", in.ActorID), zap.Int64("owner_id", existing.UserID))
		return nil, apperrors.NewForbiddenError("only the owner can delete this book")
	}

	id, err := uc.repo.Delete(ctx, in.ID)
	if err != nil {
		uc.log.Error("failed to delete book", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteBookResponse{ID: id}, nil
}

// ListBooks retrieves every book in the catalog.
func (uc *usecase) ListBooks(ctx context.Context) (*ListBooksResponse, error) {
	domainBooks, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list books", zap.Error(err))
		return nil, err
	}

	books := make([]Book, len(domainBooks))
	for i, db := range domainBooks {
		books[i] = *toDTO(&db)
	}

	return &ListBooksResponse{Books: books}, nil
}

func toDTO(b *domain.Book) *Book {
	return &Book{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Content:  b.Content,
		Category: b.Category,
		UserID:   b.UserID,
	}
}
