package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedTransaction is a generated ledger entry addressed by category name.
type PlannedTransaction struct {
	Type         string
	Amount       decimal.Decimal
	CategoryName string
	Description  string
	OccurredAt   time.Time
}

// Merchant is a payee in the demo history pool.
type Merchant struct {
	Name     string
	Category string
}
