package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "RUB", cfg.Ledger.DefaultCurrency)
	assert.Equal(t, 10, cfg.Ledger.RecentOperationsLimit)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNECTIONS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("DEFAULT_CURRENCY", "EUR")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "6543", cfg.Database.Port)
	assert.Equal(t, 7, cfg.Database.MaxConnections)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "EUR", cfg.Ledger.DefaultCurrency)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("SEED_DATABASE", "maybe")

	cfg := Load()

	assert.Equal(t, 20, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.Seed)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "oracle"
	cfg.Ledger.DefaultCurrency = "RUBLES"
	cfg.Ledger.DefaultTimezone = "Mars/Olympus"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_DRIVER")
	assert.Contains(t, err.Error(), "invalid DEFAULT_CURRENCY")
	assert.Contains(t, err.Error(), "invalid DEFAULT_TIMEZONE")
}

func TestValidate_SQLiteRequiresPath(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = DriverSQLite
	cfg.Database.SQLitePath = ""

	assert.Error(t, cfg.Validate())

	cfg.Database.SQLitePath = "/tmp/finbot.db"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "/tmp/finbot.db", cfg.Database.DSN())
}

func TestDSN_Postgres(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "localhost",
		Port:     "5432",
		User:     "finbot",
		Password: "secret",
		Name:     "finbot_db",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=finbot password=secret dbname=finbot_db sslmode=disable", cfg.DSN())
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, expected := range cases {
		app := AppConfig{LogLevel: input}
		assert.Equal(t, expected, app.SlogLevel(), input)
	}
}
