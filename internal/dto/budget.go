package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest represents a spending cap, optionally bound to one category
type CreateBudgetRequest struct {
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	LimitAmount decimal.Decimal `json:"limit_amount" validate:"positive_decimal"`
	Period      string          `json:"period" validate:"required,budget_period"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
}
