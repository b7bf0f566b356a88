package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finbot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("User", "Category").Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDForUser scopes the lookup to the owner inside the query itself.
func (r *transactionRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction

	err := r.db.WithContext(ctx).
		Joins("Category").
		Where("transactions.id = ? AND transactions.user_id = ?", id, userID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &transaction, nil
}

func (r *transactionRepository) filtered(ctx context.Context, filters models.TransactionFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("transactions.user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("transactions.occurred_at >= ?", filters.StartDate.UTC())
	}
	if filters.EndDate != nil {
		query = query.Where("transactions.occurred_at <= ?", filters.EndDate.UTC())
	}
	if filters.Type != "" {
		query = query.Where("transactions.type = ?", filters.Type)
	}
	if filters.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filters.CategoryID)
	}

	return query
}

// GetWithFilters returns one page of the user's transactions, newest
// occurred_at first, with the category joined, plus the unpaged total.
func (r *transactionRepository) GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.UserID == uuid.Nil {
		return nil, 0, errors.New("user ID cannot be nil")
	}

	var total int64
	if err := r.filtered(ctx, filters).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	query := r.filtered(ctx, filters).
		Joins("Category").
		Order("transactions.occurred_at DESC").
		Order("transactions.created_at DESC").
		Offset(filters.Offset)
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// Update writes the mutable fields, scoped to the owner.
func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Model(transaction).
		Where("user_id = ?", transaction.UserID).
		Select("amount", "category_id", "description", "occurred_at", "updated_at").
		Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// GetTotals sums income and expense for the user, optionally within inclusive bounds.
func (r *transactionRepository) GetTotals(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (models.TransactionTotals, error) {
	var result struct {
		Income  decimal.Decimal
		Expense decimal.Decimal
		Count   int64
	}

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select(`COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense,
			COUNT(*) AS count`, models.TransactionTypeIncome, models.TransactionTypeExpense).
		Where("user_id = ?", userID)

	if startDate != nil {
		query = query.Where("occurred_at >= ?", startDate.UTC())
	}
	if endDate != nil {
		query = query.Where("occurred_at <= ?", endDate.UTC())
	}

	if err := query.Scan(&result).Error; err != nil {
		return models.TransactionTotals{}, fmt.Errorf("failed to get transaction totals: %w", err)
	}

	return models.TransactionTotals{
		Income:  result.Income.Round(2),
		Expense: result.Expense.Round(2),
		Count:   result.Count,
	}, nil
}

// GetCategoryTotals groups the period's transactions by category name and type.
// Transactions without a category are reported under models.UncategorizedBucket.
func (r *transactionRepository) GetCategoryTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryTypeTotal, error) {
	var rows []struct {
		Category *string
		Type     string
		Total    decimal.Decimal
		Count    int64
	}

	query := `
		SELECT
			c.name AS category,
			t.type AS type,
			COALESCE(SUM(t.amount), 0) AS total,
			COUNT(*) AS count
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = ?
			AND t.occurred_at >= ?
			AND t.occurred_at <= ?
		GROUP BY c.name, t.type
		ORDER BY c.name, t.type
	`

	if err := r.db.WithContext(ctx).Raw(query, userID, startDate.UTC(), endDate.UTC()).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	totals := make([]models.CategoryTypeTotal, 0, len(rows))
	for _, row := range rows {
		name := models.UncategorizedBucket
		if row.Category != nil {
			name = *row.Category
		}
		totals = append(totals, models.CategoryTypeTotal{
			Category: name,
			Type:     row.Type,
			Total:    row.Total.Round(2),
			Count:    row.Count,
		})
	}

	return totals, nil
}

// SumExpenses totals expenses in the inclusive window. A nil category sums
// every expense of the user.
func (r *transactionRepository) SumExpenses(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Where("occurred_at >= ? AND occurred_at <= ?", startDate.UTC(), endDate.UTC())

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total.Round(2), nil
}
