// Package testutil builds in-memory dependencies for package tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/client-task-api/internal/config"
	"github.com/yukikurage/client-task-api/internal/database"
	"github.com/yukikurage/client-task-api/internal/logger"
	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Logger returns a logger that discards output.
func Logger() *slog.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

// NewDB opens a migrated in-memory SQLite database closed on cleanup.
// A single connection is used so every query sees the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(config.SQLiteDSN(":memory:")), database.GormConfig("error"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, Logger()))
	return db
}

// NewStore returns a Store over a fresh in-memory database.
func NewStore(t *testing.T) repository.Store {
	t.Helper()
	return repository.NewStore(NewDB(t))
}

// CreateUser inserts a user directly, bypassing password hashing.
func CreateUser(t *testing.T, store repository.Store, username, email string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: email, PasswordHash: "x"}
	require.NoError(t, store.Users().Create(user))
	return user
}
