package book

// Book represents a readable book in the catalog.
type Book struct {
	ID       int64  // ID is the unique identifier for the book
	Title    string // Title of the book
	Author   string // Author name as plain text
	Content  string // Content is the full readable text
	Category string // Category is a free-form genre label
	UserID   int64  // UserID references the user that created the book
}
