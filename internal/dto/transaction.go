package dto

import (
	"time"

	"finbot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest represents a new income or expense entry
type RecordTransactionRequest struct {
	Type        string          `json:"type" validate:"required,transaction_type"`
	Amount      decimal.Decimal `json:"amount" validate:"positive_decimal"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Description string          `json:"description,omitempty"`
	OccurredAt  *time.Time      `json:"occurred_at,omitempty"`
}

// UpdateTransactionRequest carries a partial edit; nil fields are left unchanged
type UpdateTransactionRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,positive_decimal"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	Description   *string          `json:"description,omitempty"`
	OccurredAt    *time.Time       `json:"occurred_at,omitempty"`
}

// ToUpdate converts the request into the repository patch
func (r UpdateTransactionRequest) ToUpdate() models.TransactionUpdate {
	return models.TransactionUpdate{
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		ClearCategory: r.ClearCategory,
		Description:   r.Description,
		OccurredAt:    r.OccurredAt,
	}
}

// IsEmpty reports whether the request changes nothing
func (r UpdateTransactionRequest) IsEmpty() bool {
	return r.Amount == nil && r.CategoryID == nil && !r.ClearCategory &&
		r.Description == nil && r.OccurredAt == nil
}

// ListTransactionsRequest contains filtering and pagination options
type ListTransactionsRequest struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Type       string     `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Offset     int        `json:"offset,omitempty" validate:"omitempty,min=0"`
	Limit      int        `json:"limit,omitempty" validate:"omitempty,min=1"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"has_more"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents one page of a user's transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}
