package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"readin/internal/domain/book"
	apperrors "readin/pkg/errors"
)

// BookRepoPG implements the book Repository interface using PostgreSQL and GORM.
type BookRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewBookRepoPG creates a new instance of BookRepoPG.
func NewBookRepoPG(db *gorm.DB, log *zap.Logger) *BookRepoPG {
	return &BookRepoPG{db: db, log: log}
}

// BookSchema represents the database schema for the books table.
type BookSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	Author    string
	Content   string `gorm:"type:text"`
	Category  string
	UserID    int64      `gorm:"not null;index"` // Owning user
	Owner     UserSchema `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the BookSchema model.
func (BookSchema) TableName() string {
	return "books"
}

// Create inserts a new book into the database.
func (r *BookRepoPG) Create(ctx context.Context, b *book.Book) (int64, error) {
	if b == nil {
		return 0, errors.New("book cannot be nil")
	}

	model := BookSchema{
		Title:    b.Title,
		Author:   b.Author,
		Content:  b.Content,
		Category: b.Category,
		UserID:   b.UserID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create book in db", zap.Error(err), zap.String("title", b.Title))
		return 0, fmt.Errorf("failed to create book: %w", err)
	}

	r.log.Info("book created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update updates an existing book in the database.
func (r *BookRepoPG) Update(ctx context.Context, b *book.Book) (int64, error) {
	if b == nil {
		return 0, errors.New("book cannot be nil")
	}

	updates := map[string]any{
		"title":    b.Title,
		"author":   b.Author,
		"content":  b.Content,
		"category": b.Category,
	}

	if err := r.db.WithContext(ctx).Model(&BookSchema{}).Where("id = ?", b.ID).Updates(updates).Error; err != nil {
		r.log.Error("failed to update book in db", zap.Error(err), zap.Int64("id", b.ID))
		return 0, fmt.Errorf("failed to update book: %w", err)
	}

	r.log.Info("book updated in db", zap.Int64("id", b.ID))
	return b.ID, nil
}

// Delete removes a book from the database by ID.
func (r *BookRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid book id")
	}

	if err := r.db.WithContext(ctx).Delete(&BookSchema{}, id).Error; err != nil {
		r.log.Error("failed to delete book in db", zap.Error(err), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete book: %w", err)
	}

	r.log.Info("book deleted in db", zap.Int64("id", id))
	return id, nil
}

// GetByID retrieves a book from the database by its unique ID.
func (r *BookRepoPG) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	var model BookSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("book not found", zap.Int64("id", id))
			return nil, apperrors.NewNotFoundError("book", fmt.Sprintf("book not found: id=%d", id))
		}
		r.log.Error("failed to get book from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return toBookEntity(&model), nil
}

// List retrieves all books from the database.
func (r *BookRepoPG) List(ctx context.Context) ([]book.Book, error) {
	var models []BookSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list books from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := make([]book.Book, len(models))
	for i, model := range models {
		books[i] = *toBookEntity(&model)
	}

	return books, nil
}

func toBookEntity(m *BookSchema) *book.Book {
	return &book.Book{
		ID:       m.ID,
		Title:    m.Title,
		Author:   m.Author,
		Content:  m.Content,
		Category: m.Category,
		UserID:   m.UserID,
	}
}
