package services

import (
	"context"
	"errors"
	"time"

	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	events          LedgerLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewBudgetService creates the advisory budget and spending limit checker.
// Nothing here blocks a transaction from being recorded.
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	events LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
		events:          events,
		metrics:         metrics,
		now:             time.Now,
	}
}

// CheckBudgetExceeded projects candidateAmount onto every active budget of the
// category (nil means the user's overall budgets) and returns the most
// restrictive outcome, or nil when no budget applies.
func (s *budgetService) CheckBudgetExceeded(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, candidateAmount decimal.Decimal) (*models.BudgetCheckResult, error) {
	if candidateAmount.IsNegative() {
		return nil, apperrors.NewValidation(apperrors.TransactionInvalidAmount, "candidate amount cannot be negative")
	}

	budgets, err := s.budgetRepo.ListActiveForCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, apperrors.WrapStore(err, "failed to load budgets")
	}

	now := s.now().UTC()

	var strictest *models.BudgetCheckResult
	for i := range budgets {
		budget := &budgets[i]
		if budget.StartDate.After(now) {
			continue
		}

		windowStart, windowEnd := budget.Window(now)
		spent, err := s.transactionRepo.SumExpenses(ctx, userID, categoryID, windowStart, windowEnd)
		if err != nil {
			return nil, apperrors.WrapStore(err, "failed to sum budget expenses")
		}

		result := &models.BudgetCheckResult{
			LimitOutcome: models.EvaluateLimit(budget.LimitAmount, spent, candidateAmount),
			BudgetID:     budget.ID,
			CategoryID:   budget.CategoryID,
			Period:       budget.Period,
			WindowStart:  windowStart,
			WindowEnd:    windowEnd,
		}

		if strictest == nil || result.Headroom().LessThan(strictest.Headroom()) {
			strictest = result
		}
	}

	if strictest != nil && strictest.Exceeded {
		s.events.LogLimitExceeded(ctx, userID, "budget", strictest.LimitOutcome)
		s.metrics.IncrementCounter("limit_exceeded", map[string]string{"scope": "budget"})
	}

	return strictest, nil
}

// CheckSpendingLimits evaluates the user's daily and monthly limits for the
// current day and month in the user's timezone. Unset limits are skipped.
func (s *budgetService) CheckSpendingLimits(ctx context.Context, userID uuid.UUID, candidateAmount decimal.Decimal) ([]models.SpendingLimitCheck, error) {
	if candidateAmount.IsNegative() {
		return nil, apperrors.NewValidation(apperrors.TransactionInvalidAmount, "candidate amount cannot be negative")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, userError(err, "failed to load user")
	}

	loc, err := user.Location()
	if err != nil {
		return nil, apperrors.NewValidation(apperrors.UserInvalidTimezone, err.Error())
	}

	now := s.now().In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	limits := []struct {
		scope string
		limit *decimal.Decimal
		start time.Time
	}{
		{models.SpendingScopeDaily, user.DailyLimit, dayStart},
		{models.SpendingScopeMonthly, user.MonthlyLimit, monthStart},
	}

	checks := []models.SpendingLimitCheck{}
	for _, l := range limits {
		if l.limit == nil {
			continue
		}

		spent, err := s.transactionRepo.SumExpenses(ctx, userID, nil, l.start.UTC(), now.UTC())
		if err != nil {
			return nil, apperrors.WrapStore(err, "failed to sum expenses")
		}

		check := models.SpendingLimitCheck{
			LimitOutcome: models.EvaluateLimit(*l.limit, spent, candidateAmount),
			Scope:        l.scope,
			WindowStart:  l.start,
			WindowEnd:    now,
		}
		if check.Exceeded {
			s.events.LogLimitExceeded(ctx, userID, l.scope, check.LimitOutcome)
			s.metrics.IncrementCounter("limit_exceeded", map[string]string{"scope": l.scope})
		}
		checks = append(checks, check)
	}

	return checks, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if err := validateRequest(req, apperrors.ValidationGeneral, map[string]apperrors.ErrorCode{
		"limit_amount": apperrors.BudgetInvalidLimit,
		"period":       apperrors.BudgetInvalidPeriod,
	}); err != nil {
		s.events.LogValidationFailure(ctx, "create_budget", err.Error())
		return nil, err
	}

	startDate := s.now().UTC()
	if req.StartDate != nil {
		startDate = req.StartDate.UTC()
	}
	if req.EndDate != nil && req.EndDate.Before(startDate) {
		return nil, apperrors.NewValidation(apperrors.BudgetInvalidDates, "")
	}

	var category *models.Category
	if req.CategoryID != nil {
		held, err := s.categoryRepo.GetUserCategory(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, categoryError(err, "failed to load budget category")
		}
		category = held
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		LimitAmount: req.LimitAmount,
		Period:      req.Period,
		StartDate:   startDate,
		EndDate:     req.EndDate,
		IsActive:    true,
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, apperrors.WrapStore(err, "failed to create budget")
	}
	budget.Category = category

	return budget, nil
}

func (s *budgetService) ListActiveBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapStore(err, "failed to list budgets")
	}
	return budgets, nil
}

// DeactivateBudget keeps the row for history.
func (s *budgetService) DeactivateBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	if err := s.budgetRepo.Deactivate(ctx, budgetID, userID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return apperrors.NewNotFound(apperrors.BudgetNotFound)
		}
		return apperrors.WrapStore(err, "failed to deactivate budget")
	}
	return nil
}
