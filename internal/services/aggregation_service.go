package services

import (
	"context"
	"time"

	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type aggregationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	ledger          LedgerServiceInterface
	metrics         MetricsRecorderInterface
	recentLimit     int
}

// NewAggregationService computes balances and reports on read; nothing is cached.
func NewAggregationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	ledger LedgerServiceInterface,
	metrics MetricsRecorderInterface,
	recentLimit int,
) AggregationServiceInterface {
	return &aggregationService{
		transactionRepo: transactionRepo,
		ledger:          ledger,
		metrics:         metrics,
		recentLimit:     recentLimit,
	}
}

func (s *aggregationService) GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceSummary, error) {
	totals, err := s.transactionRepo.GetTotals(ctx, userID, nil, nil)
	if err != nil {
		return nil, apperrors.WrapStore(err, "failed to calculate balance")
	}

	return &models.BalanceSummary{
		Balance:      totals.Income.Sub(totals.Expense),
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
	}, nil
}

// GetStatisticsByPeriod reports the inclusive window grouped by category.
// Period totals are summed from the same grouped rows, so they always match
// the per-category figures.
func (s *aggregationService) GetStatisticsByPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*models.PeriodStatistics, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidation(apperrors.TransactionInvalidPeriod, "")
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("period_statistics", time.Since(start))
	}()

	rows, err := s.transactionRepo.GetCategoryTotals(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, apperrors.WrapStore(err, "failed to calculate period statistics")
	}

	stats := &models.PeriodStatistics{
		StartDate:    startDate,
		EndDate:      endDate,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Categories:   []models.CategoryStatistics{},
	}

	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(stats.Categories)
			index[row.Category] = i
			stats.Categories = append(stats.Categories, models.CategoryStatistics{
				Category: row.Category,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			})
		}

		group := &stats.Categories[i]
		switch row.Type {
		case models.TransactionTypeIncome:
			group.Income = group.Income.Add(row.Total)
			stats.TotalIncome = stats.TotalIncome.Add(row.Total)
		case models.TransactionTypeExpense:
			group.Expense = group.Expense.Add(row.Total)
			stats.TotalExpense = stats.TotalExpense.Add(row.Total)
		}
		group.TransactionCount += row.Count
		stats.TransactionCount += row.Count
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)

	return stats, nil
}

// GetRecentOperations lists the newest transactions; limit <= 0 uses the configured default.
func (s *aggregationService) GetRecentOperations(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}

	page, err := s.ledger.ListForUser(ctx, userID, dto.ListTransactionsRequest{Limit: limit})
	if err != nil {
		return nil, err
	}

	return page.Transactions, nil
}
