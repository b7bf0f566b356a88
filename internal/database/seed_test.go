package database

import (
	"context"
	"testing"

	"finbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCategoryNames() []string {
	defaults := models.DefaultCategories()
	names := make([]string, 0, len(defaults))
	for _, c := range defaults {
		names = append(names, c.Name)
	}
	return names
}

func TestSeedDefaultCategories_Idempotent(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()

	inserted, err := SeedDefaultCategories(ctx, db.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(22), inserted)

	inserted, err = SeedDefaultCategories(ctx, db.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Where("is_default = ?", true).Count(&count).Error)
	assert.Equal(t, int64(22), count)
}

func TestSeedDefaultCategories_BackfillsExistingUsers(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()

	alice := CreateTestUser(t, db, 1001)
	bob := CreateTestUser(t, db, 1002)
	custom := CreateTestCategory(t, db, "Pets", false)

	_, err := SeedDefaultCategories(ctx, db.DB)
	require.NoError(t, err)
	_, err = SeedDefaultCategories(ctx, db.DB)
	require.NoError(t, err)

	for _, user := range []*models.User{alice, bob} {
		var count int64
		require.NoError(t, db.Model(&models.UserCategory{}).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Equal(t, int64(22), count)
	}

	var customEdges int64
	require.NoError(t, db.Model(&models.UserCategory{}).Where("category_id = ?", custom.ID).Count(&customEdges).Error)
	assert.Zero(t, customEdges)
}

func TestSetupTestDB_EnforcesForeignKeys(t *testing.T) {
	db := SetupTestDB(t)
	user := CreateTestUser(t, db, 77)
	category := CreateTestCategory(t, db, "Pets", false)

	require.NoError(t, db.Create(&models.UserCategory{UserID: user.ID, CategoryID: category.ID}).Error)
	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&models.UserCategory{}).Count(&remaining).Error)
	assert.Zero(t, remaining, "membership edges cascade with the user")

	var categories int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	assert.Equal(t, int64(1), categories, "the shared category row survives")
}
