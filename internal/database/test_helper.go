package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"finbot/internal/config"
	"finbot/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database. All queries share
// one connection so the in-memory schema stays visible.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(":memory:")), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			SQLitePath:     ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	return testDB
}

// SetupSeededTestDB is SetupTestDB plus the default categories.
func SetupSeededTestDB(t *testing.T) *DB {
	t.Helper()

	db := SetupTestDB(t)
	if _, err := SeedDefaultCategories(context.Background(), db.DB); err != nil {
		t.Fatalf("failed to seed default categories: %v", err)
	}
	return db
}

func CreateTestUser(t *testing.T, db *DB, telegramID int64) *models.User {
	t.Helper()

	firstName := "Test"
	user := &models.User{
		TelegramID:           telegramID,
		FirstName:            &firstName,
		NotificationsEnabled: true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, name string, isIncome bool) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     name,
		Icon:     "*",
		IsIncome: isIncome,
		IsActive: true,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"budgets",
		"transactions",
		"user_categories",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
