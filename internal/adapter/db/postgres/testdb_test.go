package postgres_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"readin/internal/adapter/db/postgres"
)

// setupTestDB opens an in-memory SQLite database with the same GORM
// configuration the service uses, so duplicate-key errors translate the
// same way they do against PostgreSQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// each connection gets its own :memory: database, so keep exactly one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&postgres.UserSchema{},
		&postgres.BookSchema{},
		&postgres.FavoriteSchema{},
	))

	return db
}
