package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-registration-backend/config"
)

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantDriver string
		wantSQLite bool
		wantErr    bool
	}{
		{name: "postgres", url: "postgres://u:p@localhost:5432/events", wantDriver: "postgres"},
		{name: "postgresql", url: "postgresql://u:p@localhost/events", wantDriver: "postgres"},
		{name: "sqlite", url: "sqlite://events.db", wantDriver: "sqlite", wantSQLite: true},
		{name: "file uri", url: "file:events.db?cache=shared", wantDriver: "sqlite", wantSQLite: true},
		{name: "mysql unsupported", url: "mysql://root@localhost/events", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, isSQLite, err := dialectorFor(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, d.Name())
			assert.Equal(t, tt.wantSQLite, isSQLite)
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "events.db?"+sqlitePragmas, SQLiteDSN("events.db"))
	assert.Equal(t, "file:events.db?cache=shared&"+sqlitePragmas, SQLiteDSN("file:events.db?cache=shared"))
}

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null"`
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "connect.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db, &widget{}))
	require.NoError(t, db.Create(&widget{Name: "gear"}).Error)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
