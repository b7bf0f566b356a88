package repositories

import (
	"context"
	"time"

	"finbot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CategoryRepositoryInterface covers shared categories and user memberships.
// Every membership read filters by user id in the same query.
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	ListDefaults(ctx context.Context) ([]models.Category, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	GetForUser(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]models.Category, error)
	GetUserCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error)
	AddToUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
	RemoveFromUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
	AddMissingDefaults(ctx context.Context, userID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)
	GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	GetTotals(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (models.TransactionTotals, error)
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryTypeTotal, error)
	SumExpenses(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Budget, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	ListActiveForCategory(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]models.Budget, error)
	Deactivate(ctx context.Context, id, userID uuid.UUID) error
}
