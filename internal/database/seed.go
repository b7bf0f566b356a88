package database

import (
	"context"
	"fmt"
	"time"

	"finbot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDefaultCategories inserts any missing default category and attaches
// every default category to every existing user. Safe to run repeatedly.
func SeedDefaultCategories(ctx context.Context, db *gorm.DB) (int64, error) {
	var inserted int64

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		defaults := models.DefaultCategories()

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&defaults)
		if result.Error != nil {
			return fmt.Errorf("failed to insert default categories: %w", result.Error)
		}
		inserted = result.RowsAffected

		if err := tx.Exec(backfillDefaultMembershipsSQL, time.Now().UTC(), true).Error; err != nil {
			return fmt.Errorf("failed to back-fill default categories: %w", err)
		}
		return nil
	})

	return inserted, err
}

const backfillDefaultMembershipsSQL = `
INSERT INTO user_categories (user_id, category_id, created_at)
SELECT u.id, c.id, ?
FROM users u
CROSS JOIN categories c
WHERE c.is_default = ?
  AND NOT EXISTS (
    SELECT 1 FROM user_categories uc
    WHERE uc.user_id = u.id AND uc.category_id = c.id
  )`
