package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "dev-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "clinic.db", cfg.Database.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
	assert.Equal(t, 8*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "dev-secret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("SEED_USERNAME", "frontdesk")
	t.Setenv("SEED_PASSWORD", "password")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 8080, cfg.Server.Port, "unparsable values fall back to the default")
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "frontdesk", cfg.Seed.Username)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "port=6543")
}

func TestLoad_CollectsAllProblems(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("SEED_USERNAME", "frontdesk")
	t.Setenv("SEED_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), `DB_DRIVER "mysql" is not supported`)
	assert.Contains(t, err.Error(), "SEED_USERNAME and SEED_PASSWORD must be set together")
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	d := DatabaseConfig{Driver: DriverSQLite, Path: "/var/lib/clinic/clinic.db", BusyTimeout: 5 * time.Second, JournalMode: "WAL"}

	dsn := d.DSN()
	assert.True(t, strings.HasPrefix(dsn, "file:/var/lib/clinic/clinic.db?"))
	assert.Contains(t, dsn, "_foreign_keys=on")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_journal_mode=WAL")

	d.JournalMode = ""
	assert.NotContains(t, d.DSN(), "_journal_mode")
}
