package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finbot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create inserts a category. The unique name constraint is the only guard
// against concurrent creators: a taken name yields ErrCategoryAlreadyExists.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(category)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCategoryAlreadyExists
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return &category, nil
}

// GetByName matches the name exactly.
func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) ListDefaults(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("is_default = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list default categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update category status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// GetForUser returns the user's active categories ordered by name,
// optionally restricted to one polarity.
func (r *categoryRepository) GetForUser(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]models.Category, error) {
	var categories []models.Category

	query := r.db.WithContext(ctx).
		Joins("JOIN user_categories ON user_categories.category_id = categories.id").
		Where("user_categories.user_id = ?", userID).
		Where("categories.is_active = ?", true)

	if isIncome != nil {
		query = query.Where("categories.is_income = ?", *isIncome)
	}

	if err := query.Order("categories.name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get user categories: %w", err)
	}

	return categories, nil
}

// GetUserCategory returns the category only when the user holds it.
func (r *categoryRepository) GetUserCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error) {
	var category models.Category

	err := r.db.WithContext(ctx).
		Joins("JOIN user_categories ON user_categories.category_id = categories.id").
		Where("user_categories.user_id = ? AND categories.id = ?", userID, categoryID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get user category: %w", err)
	}

	return &category, nil
}

// AddToUser reports false when the membership already existed.
func (r *categoryRepository) AddToUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	membership := &models.UserCategory{UserID: userID, CategoryID: categoryID}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(membership)
	if result.Error != nil {
		return false, fmt.Errorf("failed to add category to user: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// RemoveFromUser deletes only the membership edge, never the category row.
func (r *categoryRepository) RemoveFromUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&models.UserCategory{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove category from user: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// AddMissingDefaults attaches every default category the user lacks in one
// set-difference insert and returns how many edges were added.
func (r *categoryRepository) AddMissingDefaults(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		INSERT INTO user_categories (user_id, category_id, created_at)
		SELECT ?, c.id, ?
		FROM categories c
		WHERE c.is_default = ?
			AND NOT EXISTS (
				SELECT 1 FROM user_categories uc
				WHERE uc.user_id = ? AND uc.category_id = c.id
			)
		ON CONFLICT DO NOTHING`

	result := r.db.WithContext(ctx).Exec(query, userID, time.Now().UTC(), true, userID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to add default categories: %w", result.Error)
	}

	return result.RowsAffected, nil
}
