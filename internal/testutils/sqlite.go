package testutils

import (
	"fmt"
	"testing"

	"identity-org-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory SQLite database with the full schema migrated.
// A single connection keeps the in-memory database alive and serialises transactions.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), &database.Options{
		LogLevel:     logger.Silent,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err, "open sqlite test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
