// Package testdb opens throwaway SQLite databases for package tests.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/config"
	"github.com/sharath018/event-registration-backend/database"
)

// New returns a migrated database backed by a file in t.TempDir(). The pool
// is closed when the test ends.
func New(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Env:         config.EnvTesting,
		Testing:     true,
		DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models...))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
