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

// FavoriteRepoPG implements the favorite Repository interface using
// PostgreSQL and GORM.
type FavoriteRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewFavoriteRepoPG creates a new instance of FavoriteRepoPG.
func NewFavoriteRepoPG(db *gorm.DB, log *zap.Logger) *FavoriteRepoPG {
	return &FavoriteRepoPG{db: db, log: log}
}

// FavoriteSchema represents the database schema for the favorites join table.
// The composite unique index keeps at most one row per (user, book) pair.
type FavoriteSchema struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;index;uniqueIndex:idx_user_book"`
	BookID    int64 `gorm:"not null;index;uniqueIndex:idx_user_book"`
	CreatedAt time.Time
}

// TableName specifies the table name for the FavoriteSchema model.
func (FavoriteSchema) TableName() string {
	return "favorites"
}

// Add inserts a favorite row for the (user, book) pair.
func (r *FavoriteRepoPG) Add(ctx context.Context, userID, bookID int64) error {
	model := FavoriteSchema{
		UserID: userID,
		BookID: bookID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate favorite rejected by db", zap.Int64("user_id", userID), zap.Int64("book_id", bookID))
			return apperrors.NewAlreadyExistsError("favorite", "book already favorited")
		}
		r.log.Error("failed to add favorite in db", zap.Error(err), zap.Int64("user_id", userID), zap.Int64("book_id", bookID))
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	r.log.Info("favorite added in db", zap.Int64("user_id", userID), zap.Int64("book_id", bookID))
	return nil
}

// Remove deletes the favorite row for the (user, book) pair.
func (r *FavoriteRepoPG) Remove(ctx context.Context, userID, bookID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&FavoriteSchema{})
	if res.Error != nil {
		r.log.Error("failed to remove favorite in db", zap.Error(res.Error), zap.Int64("user_id", userID), zap.Int64("book_id", bookID))
		return fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("favorite", "book is not in favorites")
	}

	r.log.Info("favorite removed in db", zap.Int64("user_id", userID), zap.Int64("book_id", bookID))
	return nil
}

// Exists reports whether the (user, book) pair is already favorited.
func (r *FavoriteRepoPG) Exists(ctx context.Context, userID, bookID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&FavoriteSchema{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error; err != nil {
		r.log.Error("failed to check favorite in db", zap.Error(err), zap.Int64("user_id", userID), zap.Int64("book_id", bookID))
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return count > 0, nil
}

// ListBooks retrieves the books a user has favorited, most recent first.
func (r *FavoriteRepoPG) ListBooks(ctx context.Context, userID int64) ([]book.Book, error) {
	var models []BookSchema
	if err := r.db.WithContext(ctx).
		Model(&BookSchema{}).
		Joins("JOIN favorites ON favorites.book_id = books.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&models).Error; err != nil {
		r.log.Error("failed to list favorite books from db", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list favorite books: %w", err)
	}

	books := make([]book.Book, len(models))
	for i, model := range models {
		books[i] = *toBookEntity(&model)
	}

	return books, nil
}
