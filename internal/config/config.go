package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFormat   string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	AutoMigrate     bool
	Seed            bool
}

// LedgerConfig holds defaults applied to new users and list queries.
type LedgerConfig struct {
	DefaultCurrency       string
	DefaultTimezone       string
	RecentOperationsLimit int
	MaxPageSize           int
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finbot_user"),
			Password:        getEnv("DB_PASSWORD", "finbot_password"),
			Name:            getEnv("DB_NAME", "finbot_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "./data/finbot.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 20),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			Seed:            getBoolEnv("SEED_DATABASE", true),
		},
		Ledger: LedgerConfig{
			DefaultCurrency:       getEnv("DEFAULT_CURRENCY", "RUB"),
			DefaultTimezone:       getEnv("DEFAULT_TIMEZONE", "Europe/Moscow"),
			RecentOperationsLimit: getIntEnv("RECENT_OPERATIONS_LIMIT", 10),
			MaxPageSize:           getIntEnv("MAX_PAGE_SIZE", 100),
		},
	}
}

// Validate reports every unusable setting at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			problems = append(problems, "DB_HOST, DB_NAME and DB_USER are required for the postgres driver")
		}
		if port, err := strconv.Atoi(c.Database.Port); err != nil || port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("invalid DB_PORT '%s'", c.Database.Port))
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			problems = append(problems, "DB_SQLITE_PATH cannot be empty for the sqlite driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_DRIVER '%s': must be postgres or sqlite", c.Database.Driver))
	}

	if c.Database.MaxConnections < 1 {
		problems = append(problems, "DB_MAX_CONNECTIONS must be at least 1")
	}

	if len(c.Ledger.DefaultCurrency) != 3 {
		problems = append(problems, fmt.Sprintf("invalid DEFAULT_CURRENCY '%s': must be a 3 letter code", c.Ledger.DefaultCurrency))
	}

	if _, err := time.LoadLocation(c.Ledger.DefaultTimezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid DEFAULT_TIMEZONE '%s': %v", c.Ledger.DefaultTimezone, err))
	}

	if c.Ledger.RecentOperationsLimit < 1 || c.Ledger.MaxPageSize < 1 {
		problems = append(problems, "RECENT_OPERATIONS_LIMIT and MAX_PAGE_SIZE must be positive")
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
