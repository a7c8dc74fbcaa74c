package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"readin/internal/adapter/db/postgres"
	"readin/internal/domain/book"
	apperrors "readin/pkg/errors"
)

func createTestBook(t *testing.T, db *gorm.DB, ownerID int64, title, author string) int64 {
	t.Helper()

	repo := postgres.NewBookRepoPG(db, zaptest.NewLogger(t))
	id, err := repo.Create(context.Background(), &book.Book{
		Title:  title,
		Author: author,
		UserID: ownerID,
	})
	require.NoError(t, err)
	return id
}

func TestFavoriteRepo_AddAndExists(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	userID := createTestUser(t, db, "reader1", "reader1@example.com")
	bookID := createTestBook(t, db, userID, "Book 1", "Author 1")

	exists, err := repo.Exists(ctx, userID, bookID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, userID, bookID))

	exists, err = repo.Exists(ctx, userID, bookID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFavoriteRepo_Add_DuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	userID := createTestUser(t, db, "reader1", "reader1@example.com")
	bookID := createTestBook(t, db, userID, "Book 1", "Author 1")

	require.NoError(t, repo.Add(ctx, userID, bookID))

	err := repo.Add(ctx, userID, bookID)
	require.Error(t, err)

	var existsErr *apperrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestFavoriteRepo_Add_SameBookDifferentUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	user1 := createTestUser(t, db, "reader1", "reader1@example.com")
	user2 := createTestUser(t, db, "reader2", "reader2@example.com")
	bookID := createTestBook(t, db, user1, "Book 1", "Author 1")

	// the unique index is per (user, book), not per book
	require.NoError(t, repo.Add(ctx, user1, bookID))
	require.NoError(t, repo.Add(ctx, user2, bookID))
}

func TestFavoriteRepo_Remove(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	userID := createTestUser(t, db, "reader1", "reader1@example.com")
	bookID := createTestBook(t, db, userID, "Book 1", "Author 1")

	require.NoError(t, repo.Add(ctx, userID, bookID))
	require.NoError(t, repo.Remove(ctx, userID, bookID))

	exists, err := repo.Exists(ctx, userID, bookID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteRepo_Remove_NotFavorited(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	userID := createTestUser(t, db, "reader1", "reader1@example.com")
	bookID := createTestBook(t, db, userID, "Book 1", "Author 1")

	err := repo.Remove(ctx, userID, bookID)
	require.Error(t, err)

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestFavoriteRepo_ListBooks(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	userID := createTestUser(t, db, "reader1", "reader1@example.com")
	otherID := createTestUser(t, db, "reader2", "reader2@example.com")
	book1 := createTestBook(t, db, userID, "Book 1", "Author 1")
	book2 := createTestBook(t, db, userID, "Book 2", "Author 2")
	book3 := createTestBook(t, db, userID, "Book 3", "Author 3")

	require.NoError(t, repo.Add(ctx, userID, book1))
	require.NoError(t, repo.Add(ctx, userID, book2))
	require.NoError(t, repo.Add(ctx, otherID, book3))

	books, err := repo.ListBooks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, books, 2)

	titles := []string{books[0].Title, books[1].Title}
	assert.ElementsMatch(t, []string{"Book 1", "Book 2"}, titles)
}

func TestFavoriteRepo_ListBooks_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewFavoriteRepoPG(db, zaptest.NewLogger(t))

	userID := createTestUser(t, db, "reader1", "reader1@example.com")

	books, err := repo.ListBooks(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, books)
}
