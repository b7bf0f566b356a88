package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LimitOutcome compares projected spend against a limit.
type LimitOutcome struct {
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	Candidate      decimal.Decimal `json:"candidate"`
	ProjectedTotal decimal.Decimal `json:"projected_total"`
	Exceeded       bool            `json:"exceeded"`
	Excess         decimal.Decimal `json:"excess"`
	Remaining      decimal.Decimal `json:"remaining"`
}

// EvaluateLimit projects spent+candidate against limit. Exactly reaching the
// limit is not an excess.
func EvaluateLimit(limit, spent, candidate decimal.Decimal) LimitOutcome {
	projected := spent.Add(candidate)
	outcome := LimitOutcome{
		Limit:          limit,
		Spent:          spent,
		Candidate:      candidate,
		ProjectedTotal: projected,
		Excess:         decimal.Zero,
		Remaining:      decimal.Zero,
	}

	if projected.GreaterThan(limit) {
		outcome.Exceeded = true
		outcome.Excess = projected.Sub(limit)
	} else {
		outcome.Remaining = limit.Sub(projected)
	}
	return outcome
}

// Headroom is the remaining amount, negative when exceeded.
func (o LimitOutcome) Headroom() decimal.Decimal {
	return o.Limit.Sub(o.ProjectedTotal)
}

// BudgetCheckResult is the advisory outcome for one active budget.
type BudgetCheckResult struct {
	LimitOutcome
	BudgetID    uuid.UUID  `json:"budget_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Period      string     `json:"period"`
	WindowStart time.Time  `json:"window_start"`
	WindowEnd   time.Time  `json:"window_end"`
}

const (
	SpendingScopeDaily   = "daily"
	SpendingScopeMonthly = "monthly"
)

// SpendingLimitCheck is the outcome of a user level daily or monthly limit.
type SpendingLimitCheck struct {
	LimitOutcome
	Scope       string    `json:"scope"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}
