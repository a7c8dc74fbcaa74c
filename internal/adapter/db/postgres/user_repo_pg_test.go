package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"readin/internal/adapter/db/postgres"
	"readin/internal/domain/user"
	apperrors "readin/pkg/errors"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{
		Username: "reader1",
		Email:    "reader1@example.com",
		Password: "hashed",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "reader1", got.Username)
	assert.Equal(t, "reader1@example.com", got.Email)
	assert.Equal(t, "hashed", got.Password)
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Username: "reader1", Email: "dup@example.com", Password: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{Username: "reader2", Email: "dup@example.com", Password: "h"})
	require.Error(t, err)

	var existsErr *apperrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Username: "dup", Email: "a@example.com", Password: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{Username: "dup", Email: "b@example.com", Password: "h"})
	require.Error(t, err)

	var existsErr *apperrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUserRepo_GetByEmail_MissingIsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))

	got, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Username: "reader1", Email: "reader1@example.com", Password: "h"})
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "reader1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "reader1@example.com", got.Email)

	missing, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Username: "reader1", Email: "reader1@example.com", Password: "h"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, &user.User{ID: id, Username: "renamed", Email: "renamed@example.com"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Username)
	assert.Equal(t, "renamed@example.com", got.Email)
	// password untouched when not supplied
	assert.Equal(t, "h", got.Password)
}

func TestUserRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Username: "reader1", Email: "reader1@example.com", Password: "h"})
	require.NoError(t, err)

	_, err = repo.Delete(ctx, id)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUserRepo_List(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Username: "reader1", Email: "reader1@example.com", Password: "h"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &user.User{Username: "reader2", Email: "reader2@example.com", Password: "h"})
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "reader1", users[0].Username)
	assert.Equal(t, "reader2", users[1].Username)
}
