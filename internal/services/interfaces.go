package services

import (
	"context"
	"time"

	"finbot/internal/dto"
	"finbot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserServiceInterface covers implicit registration and user settings
type UserServiceInterface interface {
	GetOrCreateUser(ctx context.Context, telegramID int64, profile dto.UserProfile) (*models.User, bool, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req dto.UpdateUserRequest) (*models.User, error)
}

// CategoryServiceInterface manages the shared category vocabulary and user memberships
type CategoryServiceInterface interface {
	// GetUserCategories returns the user's active categories ordered by name
	GetUserCategories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]models.Category, error)

	// GetUserCategory returns the category only when the user holds it
	GetUserCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error)

	// FindOrCreateCategory returns the category with this exact name, creating it when absent
	FindOrCreateCategory(ctx context.Context, name, icon string, isIncome bool) (*models.Category, error)

	AddCategoryToUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
	RemoveCategoryFromUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)

	// EnsureDefaultCategories attaches every default category the user lacks
	EnsureDefaultCategories(ctx context.Context, userID uuid.UUID) (int64, error)

	AddCustomCategory(ctx context.Context, userID uuid.UUID, req dto.CategoryRequest) (*models.Category, bool, error)
	SetCategoryActive(ctx context.Context, categoryID uuid.UUID, active bool) error
}

// LedgerServiceInterface records and retrieves a user's transactions
type LedgerServiceInterface interface {
	Record(ctx context.Context, userID uuid.UUID, req dto.RecordTransactionRequest) (*models.Transaction, error)
	ListForUser(ctx context.Context, userID uuid.UUID, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error)
	GetByID(ctx context.Context, transactionID, userID uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, transactionID, userID uuid.UUID, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, transactionID, userID uuid.UUID) error
}

// AggregationServiceInterface answers balance and report queries computed on read
type AggregationServiceInterface interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceSummary, error)
	GetStatisticsByPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*models.PeriodStatistics, error)
	GetRecentOperations(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
}

// BudgetServiceInterface manages budgets and advisory limit checks
type BudgetServiceInterface interface {
	// CheckBudgetExceeded returns nil when no active budget covers the category
	CheckBudgetExceeded(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, candidateAmount decimal.Decimal) (*models.BudgetCheckResult, error)
	CheckSpendingLimits(ctx context.Context, userID uuid.UUID, candidateAmount decimal.Decimal) ([]models.SpendingLimitCheck, error)
	CreateBudget(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetRequest) (*models.Budget, error)
	ListActiveBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
	DeactivateBudget(ctx context.Context, userID, budgetID uuid.UUID) error
}

// HistoryGeneratorInterface plans demo transactions for a period
type HistoryGeneratorInterface interface {
	Generate(start, end time.Time, openingBalance decimal.Decimal) []models.PlannedTransaction
	Merchants() []models.Merchant
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type LedgerLoggerInterface interface {
	LogUserRegistered(ctx context.Context, userID uuid.UUID, telegramID int64)
	LogUserUpdated(ctx context.Context, userID uuid.UUID, updatedFields []string)
	LogDefaultCategoriesAttached(ctx context.Context, userID uuid.UUID, added int64)
	LogCategoryCreated(ctx context.Context, categoryID uuid.UUID, name string, isIncome bool)
	LogCategoryMembershipChanged(ctx context.Context, userID, categoryID uuid.UUID, added bool)
	LogTransactionRecorded(ctx context.Context, transaction *models.Transaction)
	LogTransactionUpdated(ctx context.Context, transactionID, userID uuid.UUID, updatedFields []string)
	LogTransactionDeleted(ctx context.Context, transactionID, userID uuid.UUID)
	LogLimitExceeded(ctx context.Context, userID uuid.UUID, scope string, outcome models.LimitOutcome)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogRequestFailed(ctx context.Context, errorMsg string, durationMs int64)
}
