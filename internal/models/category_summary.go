package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedBucket groups transactions without a category in reports.
const UncategorizedBucket = "Uncategorized"

// BalanceSummary holds running totals for a user. Zero when no rows match.
type BalanceSummary struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// CategoryStatistics contains aggregated transaction data for one category
type CategoryStatistics struct {
	Category         string          `json:"category"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	TransactionCount int64           `json:"transaction_count"`
}

// PeriodStatistics is the report for an inclusive [StartDate, EndDate] window.
type PeriodStatistics struct {
	StartDate        time.Time            `json:"start_date"`
	EndDate          time.Time            `json:"end_date"`
	TotalIncome      decimal.Decimal      `json:"total_income"`
	TotalExpense     decimal.Decimal      `json:"total_expense"`
	Balance          decimal.Decimal      `json:"balance"`
	TransactionCount int64                `json:"transaction_count"`
	Categories       []CategoryStatistics `json:"categories"`
}

// CategoryTypeTotal is one GROUP BY row of category name and transaction type.
type CategoryTypeTotal struct {
	Category string
	Type     string
	Total    decimal.Decimal
	Count    int64
}

// TransactionTotals holds income and expense sums over a set of transactions.
type TransactionTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int64
}
