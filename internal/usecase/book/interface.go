package book

import "context"

// Usecase defines the interface for book catalog operations.
type Usecase interface {
	CreateBook(ctx context.Context, in CreateBookRequest) (*CreateBookResponse, error)
	GetBook(ctx context.Context, in GetBookRequest) (*Book, error)
	UpdateBook(ctx context.Context, in UpdateBookRequest) (*UpdateBookResponse, error)
	DeleteBook(ctx context.Context, in DeleteBookRequest) (*DeleteBookResponse, error)
	ListBooks(ctx context.Context) (*ListBooksResponse, error)
}
