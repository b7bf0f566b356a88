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

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockCategoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	mockEvents          *service_mocks.MockLedgerLoggerInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	service             LedgerServiceInterface
	ctx                 context.Context
	userID              uuid.UUID
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.mockEvents = service_mocks.NewMockLedgerLoggerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewLedgerService(s.mockTransactionRepo, s.mockCategoryRepo, s.mockEvents, s.mockMetrics, 50)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerServiceTestSuite) TestRecord_RejectsNonPositiveAmounts() {
	s.mockEvents.EXPECT().LogValidationFailure(gomock.Any(), "record_transaction", gomock.Any()).Times(3)

	for _, amount := range []string{"0", "-1200.00", "0.001"} {
		_, err := s.service.Record(s.ctx, s.userID, dto.RecordTransactionRequest{
			Type:   models.TransactionTypeExpense,
			Amount: decimal.RequireFromString(amount),
		})

		s.True(apperrors.IsValidation(err), amount)
		s.Equal(apperrors.TransactionInvalidAmount, apperrors.CodeOf(err), amount)
	}
}

func (s *LedgerServiceTestSuite) TestRecord_RejectsUnknownType() {
	s.mockEvents.EXPECT().LogValidationFailure(gomock.Any(), "record_transaction", gomock.Any())

	_, err := s.service.Record(s.ctx, s.userID, dto.RecordTransactionRequest{
		Type:   "transfer",
		Amount: decimal.NewFromInt(10),
	})

	s.True(apperrors.IsValidation(err))
	s.Equal(apperrors.TransactionInvalidType, apperrors.CodeOf(err))
}

func (s *LedgerServiceTestSuite) TestRecord_CategoryMustBeHeld() {
	categoryID := uuid.New()
	s.mockCategoryRepo.EXPECT().GetUserCategory(gomock.Any(), s.userID, categoryID).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.Record(s.ctx, s.userID, dto.RecordTransactionRequest{
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(10),
		CategoryID: &categoryID,
	})

	s.True(apperrors.IsNotFound(err))
	s.Equal(apperrors.CategoryNotFound, apperrors.CodeOf(err))
}

func (s *LedgerServiceTestSuite) TestRecord_Success() {
	category := &models.Category{ID: uuid.New(), Name: "Food"}
	occurred := time.Date(2024, 5, 1, 9, 30, 0, 0, time.FixedZone("MSK", 3*60*60))
	description := gofakeit.Sentence(4)

	s.mockCategoryRepo.EXPECT().GetUserCategory(gomock.Any(), s.userID, category.ID).Return(category, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
		s.Equal(s.userID, tx.UserID)
		s.Equal(time.UTC, tx.OccurredAt.Location())
		s.True(occurred.Equal(tx.OccurredAt))
		tx.ID = uuid.New()
		return nil
	})
	s.mockEvents.EXPECT().LogTransactionRecorded(gomock.Any(), gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter("transaction_recorded", map[string]string{"type": "expense"})
	s.mockMetrics.EXPECT().RecordGauge("transaction_amount", 1200.0, map[string]string{"type": "expense"})

	tx, err := s.service.Record(s.ctx, s.userID, dto.RecordTransactionRequest{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("1200.00"),
		CategoryID:  &category.ID,
		Description: " " + description + " ",
		OccurredAt:  &occurred,
	})

	s.NoError(err)
	s.Equal(description, tx.Description)
	s.Same(category, tx.Category)
}

func (s *LedgerServiceTestSuite) TestListForUser_CapsPageSize() {
	s.mockTransactionRepo.EXPECT().GetWithFilters(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(50, filters.Limit)
			s.Equal(s.userID, filters.UserID)
			return []models.Transaction{{ID: uuid.New()}}, 120, nil
		})

	page, err := s.service.ListForUser(s.ctx, s.userID, dto.ListTransactionsRequest{Limit: 500})

	s.NoError(err)
	s.Len(page.Transactions, 1)
	s.Equal(int64(120), page.Pagination.Total)
	s.True(page.Pagination.HasMore)
}

func (s *LedgerServiceTestSuite) TestListForUser_RejectsInvertedRange() {
	start := time.Now()
	end := start.Add(-time.Hour)

	_, err := s.service.ListForUser(s.ctx, s.userID, dto.ListTransactionsRequest{StartDate: &start, EndDate: &end})

	s.Equal(apperrors.TransactionInvalidPeriod, apperrors.CodeOf(err))
}

func (s *LedgerServiceTestSuite) TestGetByID_OtherUsersRowIsNotFound() {
	id := uuid.New()
	s.mockTransactionRepo.EXPECT().GetByIDForUser(gomock.Any(), id, s.userID).Return(nil, repositories.ErrTransactionNotFound)

	_, err := s.service.GetByID(s.ctx, id, s.userID)

	s.True(apperrors.IsNotFound(err))
	s.Equal(apperrors.TransactionNotFound, apperrors.CodeOf(err))
}

func (s *LedgerServiceTestSuite) TestUpdate_EmptyRequest() {
	_, err := s.service.Update(s.ctx, uuid.New(), s.userID, dto.UpdateTransactionRequest{})

	s.True(apperrors.IsValidation(err))
}

func (s *LedgerServiceTestSuite) TestUpdate_Success() {
	id := uuid.New()
	amount := decimal.RequireFromString("950.50")
	existing := &models.Transaction{
		ID:     id,
		UserID: s.userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.RequireFromString("1200.00"),
	}

	gomock.InOrder(
		s.mockTransactionRepo.EXPECT().GetByIDForUser(gomock.Any(), id, s.userID).Return(existing, nil),
		s.mockTransactionRepo.EXPECT().Update(gomock.Any(), existing).Return(nil),
		s.mockTransactionRepo.EXPECT().GetByIDForUser(gomock.Any(), id, s.userID).Return(existing, nil),
	)
	s.mockEvents.EXPECT().LogTransactionUpdated(gomock.Any(), id, s.userID, []string{"amount"})
	s.mockMetrics.EXPECT().IncrementCounter("transaction_updated", gomock.Any())

	tx, err := s.service.Update(s.ctx, id, s.userID, dto.UpdateTransactionRequest{Amount: &amount})

	s.NoError(err)
	s.True(amount.Equal(tx.Amount))
}

func (s *LedgerServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.mockTransactionRepo.EXPECT().Delete(gomock.Any(), id, s.userID).Return(repositories.ErrTransactionNotFound)

	err := s.service.Delete(s.ctx, id, s.userID)

	s.True(apperrors.IsNotFound(err))
}
