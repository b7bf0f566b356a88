package repositories

import (
	"context"
	"errors"
	"fmt"

	"finbot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("User", "Category").Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_date DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list active budgets: %w", err)
	}
	return budgets, nil
}

// ListActiveForCategory returns active budgets on exactly that category;
// a nil category selects the user's overall budgets.
func (r *budgetRepository) ListActiveForCategory(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]models.Budget, error) {
	query := r.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	} else {
		query = query.Where("category_id IS NULL")
	}

	var budgets []models.Budget
	if err := query.Order("start_date DESC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets for category: %w", err)
	}
	return budgets, nil
}

// Deactivate keeps the row for history.
func (r *budgetRepository) Deactivate(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
