package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ProfileDefaults(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		wantURL     string
		wantDebug   bool
		wantTesting bool
		wantLevel   string
	}{
		{name: "development", env: EnvDevelopment, wantURL: "sqlite://events.db", wantDebug: true, wantLevel: "debug"},
		{name: "testing", env: EnvTesting, wantURL: "sqlite://test.db", wantTesting: true, wantLevel: "debug"},
		{name: "mixed case", env: " Testing ", wantURL: "sqlite://test.db", wantTesting: true, wantLevel: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("LOG_LEVEL", "")
			v := newViper()
			v.Set("APP_ENV", tt.env)

			cfg, err := FromViper(v)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, cfg.DatabaseURL)
			assert.Equal(t, tt.wantDebug, cfg.Debug)
			assert.Equal(t, tt.wantTesting, cfg.Testing)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, ":5000", cfg.Addr())
			assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
			assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
			assert.Empty(t, cfg.KafkaBrokers)
		})
	}
}

func TestFromViper_ProductionRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	v := newViper()
	v.Set("APP_ENV", EnvProduction)

	_, err := FromViper(v)
	require.ErrorIs(t, err, ErrMissingDatabaseURL)

	v.Set("DATABASE_URL", "postgres://app:secret@db:5432/events?sslmode=disable")
	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromViper_UnknownProfile(t *testing.T) {
	v := newViper()
	v.Set("APP_ENV", "staging")

	_, err := FromViper(v)
	require.Error(t, err)
}

func TestFromViper_Lists(t *testing.T) {
	v := newViper()
	v.Set("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	v.Set("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	v.Set("DB_CONN_MAX_LIFETIME", "90s")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 90*time.Second, cfg.DBConnMaxLifetime)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(filepath.Join(dir, "absent.env")))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.env")
		require.NoError(t, os.WriteFile(path, []byte("BAD-KEY=1\n"), 0o600))

		err := loadEnvFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.env")
	})
}
