package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries.
// Date bounds are inclusive.
type TransactionFilters struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       string
	Offset     int
	Limit      int
}

// TransactionUpdate carries the mutable fields of a transaction; nil fields are left unchanged.
type TransactionUpdate struct {
	Amount        *decimal.Decimal
	CategoryID    *uuid.UUID
	ClearCategory bool
	Description   *string
	OccurredAt    *time.Time
}

// Apply copies the set fields onto t and returns the names of the changed columns.
func (u TransactionUpdate) Apply(t *Transaction) []string {
	var changed []string

	if u.Amount != nil {
		t.Amount = *u.Amount
		changed = append(changed, "amount")
	}

	switch {
	case u.ClearCategory:
		t.CategoryID = nil
		t.Category = nil
		changed = append(changed, "category_id")
	case u.CategoryID != nil:
		id := *u.CategoryID
		t.CategoryID = &id
		t.Category = nil
		changed = append(changed, "category_id")
	}

	if u.Description != nil {
		t.Description = *u.Description
		changed = append(changed, "description")
	}

	if u.OccurredAt != nil {
		t.OccurredAt = u.OccurredAt.UTC()
		changed = append(changed, "occurred_at")
	}

	return changed
}
