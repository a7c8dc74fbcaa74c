package book

// CreateBookRequest represents the request payload for creating a book.
// ActorID is the authenticated user that becomes the owner.
type CreateBookRequest struct {
	ActorID  int64  `validate:"required"`
	Title    string `validate:"required,min=1,max=200"`
	Author   string `validate:"max=200"`
	Content  string
	Category string `validate:"max=100"`
}

// CreateBookResponse represents the response payload after creating a book.
type CreateBookResponse struct {
	ID int64
}

// GetBookRequest represents the request payload for retrieving a book.
type GetBookRequest struct {
	ID int64
}

// UpdateBookRequest represents the request payload for updating a book.
// Empty fields are left unchanged.
type UpdateBookRequest struct {
	ID       int64 `validate:"required"`
	ActorID  int64 `validate:"required"`
	Title    string `validate:"omitempty,min=1,max=200"`
	Author   string `validate:"max=200"`
	Content  string
	Category string `validate:"max=100"`
}

// UpdateBookResponse represents the response payload after updating a book.
type UpdateBookResponse struct {
	ID int64
}

// DeleteBookRequest represents the request payload for deleting a book.
type DeleteBookRequest struct {
	ID      int64
	ActorID int64
}

// DeleteBookResponse represents the response payload after deleting a book.
type DeleteBookResponse struct {
	ID int64
}

// ListBooksResponse represents the response payload for the catalog listing.
type ListBooksResponse struct {
	Books []Book
}

// Book represents a book DTO for API responses.
type Book struct {
	ID       int64
	Title    string
	Author   string
	Content  string
	Category string
	UserID   int64
}
