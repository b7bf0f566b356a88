package services

import (
	"context"
	"testing"
	"time"

	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/repositories"
	"finbot/internal/repositories/repository_mocks"
	"finbot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockBudgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockCategoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	mockUserRepo        *repository_mocks.MockUserRepositoryInterface
	mockEvents          *service_mocks.MockLedgerLoggerInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	service             *budgetService
	ctx                 context.Context
	userID              uuid.UUID
	now                 time.Time
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.mockEvents = service_mocks.NewMockLedgerLoggerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewBudgetService(
		s.mockBudgetRepo, s.mockTransactionRepo, s.mockCategoryRepo, s.mockUserRepo, s.mockEvents, s.mockMetrics,
	).(*budgetService)

	s.now = time.Date(2024, 6, 15, 21, 30, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetServiceTestSuite) TestCheckBudgetExceeded_NoBudget() {
	categoryID := uuid.New()
	s.mockBudgetRepo.EXPECT().ListActiveForCategory(gomock.Any(), s.userID, &categoryID).Return(nil, nil)

	result, err := s.service.CheckBudgetExceeded(s.ctx, s.userID, &categoryID, decimal.NewFromInt(500))

	s.NoError(err)
	s.Nil(result)
}

func (s *BudgetServiceTestSuite) TestCheckBudgetExceeded_ProjectsCandidate() {
	categoryID := uuid.New()
	budget := models.Budget{
		ID:          uuid.New(),
		UserID:      s.userID,
		CategoryID:  &categoryID,
		LimitAmount: decimal.RequireFromString("1500.00"),
		Period:      models.BudgetPeriodMonthly,
		StartDate:   s.now.AddDate(0, 0, -14),
		IsActive:    true,
	}

	s.mockBudgetRepo.EXPECT().ListActiveForCategory(gomock.Any(), s.userID, &categoryID).Return([]models.Budget{budget}, nil)
	s.mockTransactionRepo.EXPECT().SumExpenses(gomock.Any(), s.userID, &categoryID, budget.StartDate, s.now).
		Return(decimal.RequireFromString("1200.00"), nil)
	s.mockEvents.EXPECT().LogLimitExceeded(gomock.Any(), s.userID, "budget", gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter("limit_exceeded", map[string]string{"scope": "budget"})

	result, err := s.service.CheckBudgetExceeded(s.ctx, s.userID, &categoryID, decimal.RequireFromString("500.00"))

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.True(result.Exceeded)
	s.Equal("1700", result.ProjectedTotal.String())
	s.Equal("200", result.Excess.String())
	s.Equal(budget.ID, result.BudgetID)
	s.Equal(s.now, result.WindowEnd)
}

func (s *BudgetServiceTestSuite) TestCheckBudgetExceeded_MostRestrictiveWins() {
	loose := models.Budget{
		ID:          uuid.New(),
		LimitAmount: decimal.NewFromInt(10000),
		Period:      models.BudgetPeriodMonthly,
		StartDate:   s.now.AddDate(0, -1, 0),
	}
	endDate := s.now.AddDate(0, 0, 1)
	tight := models.Budget{
		ID:          uuid.New(),
		LimitAmount: decimal.NewFromInt(300),
		Period:      models.BudgetPeriodWeekly,
		StartDate:   s.now.AddDate(0, 0, -6),
		EndDate:     &endDate,
	}
	future := models.Budget{
		ID:          uuid.New(),
		LimitAmount: decimal.NewFromInt(1),
		Period:      models.BudgetPeriodDaily,
		StartDate:   s.now.AddDate(0, 0, 2),
	}

	s.mockBudgetRepo.EXPECT().ListActiveForCategory(gomock.Any(), s.userID, nil).
		Return([]models.Budget{loose, tight, future}, nil)
	s.mockTransactionRepo.EXPECT().SumExpenses(gomock.Any(), s.userID, nil, loose.StartDate, s.now).
		Return(decimal.NewFromInt(2000), nil)
	s.mockTransactionRepo.EXPECT().SumExpenses(gomock.Any(), s.userID, nil, tight.StartDate, endDate).
		Return(decimal.NewFromInt(250), nil)

	result, err := s.service.CheckBudgetExceeded(s.ctx, s.userID, nil, decimal.NewFromInt(40))

	s.Require().NoError(err)
	s.Equal(tight.ID, result.BudgetID)
	s.False(result.Exceeded)
	s.Equal("10", result.Remaining.String())
}

func (s *BudgetServiceTestSuite) TestCheckBudgetExceeded_NegativeCandidate() {
	_, err := s.service.CheckBudgetExceeded(s.ctx, s.userID, nil, decimal.NewFromInt(-1))

	s.True(apperrors.IsValidation(err))
}

func (s *BudgetServiceTestSuite) TestCheckSpendingLimits_UsesUserTimezone() {
	daily := decimal.NewFromInt(1000)
	user := &models.User{
		ID:         s.userID,
		TelegramID: 42,
		Currency:   "RUB",
		Timezone:   "Europe/Moscow",
		DailyLimit: &daily,
	}

	// 21:30 UTC is already the 16th in Moscow
	moscow, _ := time.LoadLocation("Europe/Moscow")
	dayStart := time.Date(2024, 6, 16, 0, 0, 0, 0, moscow)

	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), s.userID).Return(user, nil)
	s.mockTransactionRepo.EXPECT().SumExpenses(gomock.Any(), s.userID, nil, dayStart.UTC(), s.now).
		Return(decimal.NewFromInt(100), nil)

	checks, err := s.service.CheckSpendingLimits(s.ctx, s.userID, decimal.NewFromInt(200))

	s.Require().NoError(err)
	s.Require().Len(checks, 1)
	s.Equal(models.SpendingScopeDaily, checks[0].Scope)
	s.False(checks[0].Exceeded)
	s.Equal("700", checks[0].Remaining.String())
	s.True(dayStart.Equal(checks[0].WindowStart))
}

func (s *BudgetServiceTestSuite) TestCheckSpendingLimits_UnknownUser() {
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), s.userID).Return(nil, repositories.ErrUserNotFound)

	_, err := s.service.CheckSpendingLimits(s.ctx, s.userID, decimal.NewFromInt(1))

	s.True(apperrors.IsNotFound(err))
}

func (s *BudgetServiceTestSuite) TestCreateBudget_RejectsEndBeforeStart() {
	start := s.now
	end := s.now.AddDate(0, 0, -1)

	_, err := s.service.CreateBudget(s.ctx, s.userID, dto.CreateBudgetRequest{
		LimitAmount: decimal.NewFromInt(100),
		Period:      models.BudgetPeriodWeekly,
		StartDate:   &start,
		EndDate:     &end,
	})

	s.Equal(apperrors.BudgetInvalidDates, apperrors.CodeOf(err))
}

func (s *BudgetServiceTestSuite) TestCreateBudget_InvalidPeriod() {
	s.mockEvents.EXPECT().LogValidationFailure(gomock.Any(), "create_budget", gomock.Any())

	_, err := s.service.CreateBudget(s.ctx, s.userID, dto.CreateBudgetRequest{
		LimitAmount: decimal.NewFromInt(100),
		Period:      "yearly",
	})

	s.Equal(apperrors.BudgetInvalidPeriod, apperrors.CodeOf(err))
}

func (s *BudgetServiceTestSuite) TestDeactivateBudget_NotFound() {
	budgetID := uuid.New()
	s.mockBudgetRepo.EXPECT().Deactivate(gomock.Any(), budgetID, s.userID).Return(repositories.ErrBudgetNotFound)

	err := s.service.DeactivateBudget(s.ctx, s.userID, budgetID)

	s.Equal(apperrors.BudgetNotFound, apperrors.CodeOf(err))
}
