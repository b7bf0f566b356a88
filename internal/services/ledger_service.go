package services

import (
	"context"
	"errors"
	"strings"

	"finbot/internal/dto"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/repositories"

	"github.com/google/uuid"
)

var transactionFieldCodes = map[string]apperrors.ErrorCode{
	"amount": apperrors.TransactionInvalidAmount,
	"type":   apperrors.TransactionInvalidType,
}

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	events          LedgerLoggerInterface
	metrics         MetricsRecorderInterface
	maxPageSize     int
}

// NewLedgerService creates the transaction ledger. maxPageSize caps list queries.
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	events LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
	maxPageSize int,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		events:          events,
		metrics:         metrics,
		maxPageSize:     maxPageSize,
	}
}

// Record validates and persists a new entry. A category must be one the user holds.
func (s *ledgerService) Record(ctx context.Context, userID uuid.UUID, req dto.RecordTransactionRequest) (*models.Transaction, error) {
	if err := validateRequest(req, apperrors.ValidationGeneral, transactionFieldCodes); err != nil {
		s.events.LogValidationFailure(ctx, "record_transaction", err.Error())
		return nil, err
	}

	var category *models.Category
	if req.CategoryID != nil {
		held, err := s.categoryRepo.GetUserCategory(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, categoryError(err, "failed to load transaction category")
		}
		category = held
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: strings.TrimSpace(req.Description),
	}
	if req.OccurredAt != nil {
		transaction.OccurredAt = req.OccurredAt.UTC()
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, apperrors.WrapStore(err, "failed to record transaction")
	}
	transaction.Category = category

	s.events.LogTransactionRecorded(ctx, transaction)
	s.metrics.IncrementCounter("transaction_recorded", map[string]string{"type": transaction.Type})
	s.metrics.RecordGauge("transaction_amount", transaction.Amount.InexactFloat64(), map[string]string{"type": transaction.Type})

	return transaction, nil
}

// ListForUser returns one page, newest first, with the unpaged total.
func (s *ledgerService) ListForUser(ctx context.Context, userID uuid.UUID, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	if err := validateRequest(req, apperrors.ValidationGeneral, transactionFieldCodes); err != nil {
		return nil, err
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidation(apperrors.TransactionInvalidPeriod, "")
	}

	limit := req.Limit
	if limit <= 0 || limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(ctx, models.TransactionFilters{
		UserID:     userID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CategoryID: req.CategoryID,
		Type:       req.Type,
		Offset:     req.Offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, apperrors.WrapStore(err, "failed to list transactions")
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return &dto.ListTransactionsResponse{
		Transactions: transactions,
		Pagination: dto.PaginationInfo{
			HasMore: int64(req.Offset+len(transactions)) < total,
			Offset:  req.Offset,
			Limit:   limit,
			Total:   total,
		},
	}, nil
}

func (s *ledgerService) GetByID(ctx context.Context, transactionID, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(ctx, transactionID, userID)
	if err != nil {
		return nil, transactionError(err, "failed to load transaction")
	}
	return transaction, nil
}

// Update applies a partial edit to one of the user's transactions.
func (s *ledgerService) Update(ctx context.Context, transactionID, userID uuid.UUID, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidation(apperrors.ValidationRequiredField, "no fields to update")
	}
	if err := validateRequest(req, apperrors.ValidationGeneral, transactionFieldCodes); err != nil {
		s.events.LogValidationFailure(ctx, "update_transaction", err.Error())
		return nil, err
	}

	transaction, err := s.transactionRepo.GetByIDForUser(ctx, transactionID, userID)
	if err != nil {
		return nil, transactionError(err, "failed to load transaction")
	}

	if req.CategoryID != nil && !req.ClearCategory {
		if _, err := s.categoryRepo.GetUserCategory(ctx, userID, *req.CategoryID); err != nil {
			return nil, categoryError(err, "failed to load transaction category")
		}
	}

	changed := req.ToUpdate().Apply(transaction)

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, transactionError(err, "failed to update transaction")
	}

	s.events.LogTransactionUpdated(ctx, transactionID, userID, changed)
	s.metrics.IncrementCounter("transaction_updated", nil)

	return s.GetByID(ctx, transactionID, userID)
}

func (s *ledgerService) Delete(ctx context.Context, transactionID, userID uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, transactionID, userID); err != nil {
		return transactionError(err, "failed to delete transaction")
	}

	s.events.LogTransactionDeleted(ctx, transactionID, userID)
	s.metrics.IncrementCounter("transaction_deleted", nil)

	return nil
}

// transactionError hides whether a missing row belongs to another user.
func transactionError(err error, message string) error {
	if errors.Is(err, repositories.ErrTransactionNotFound) {
		return apperrors.NewNotFound(apperrors.TransactionNotFound)
	}
	return apperrors.WrapStore(err, message)
}
