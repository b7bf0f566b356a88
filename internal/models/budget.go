package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodDaily   = "daily"
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
)

var (
	ErrInvalidBudgetLimit  = errors.New("budget limit must be positive")
	ErrInvalidBudgetPeriod = errors.New("budget period must be daily, weekly or monthly")
	ErrInvalidBudgetDates  = errors.New("budget end date is before its start date")
)

// Budget caps expenses for a user, optionally within one category.
// Budgets are deactivated, never deleted.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_user_active,priority:1" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_budgets_limit_amount,limit_amount > 0" json:"limit_amount"`
	Period      string          `gorm:"type:varchar(10);not null;check:chk_budgets_period,period IN ('daily','weekly','monthly')" json:"period"`
	StartDate   time.Time       `gorm:"not null" json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	IsActive    bool            `gorm:"not null;index:idx_budgets_user_active,priority:2" json:"is_active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now().UTC()
	if b.StartDate.IsZero() {
		b.StartDate = now
	}
	b.StartDate = b.StartDate.UTC()
	if b.EndDate != nil {
		end := b.EndDate.UTC()
		b.EndDate = &end
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrMissingUser
	}
	if !b.LimitAmount.IsPositive() {
		return ErrInvalidBudgetLimit
	}
	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}
	if b.EndDate != nil && b.EndDate.Before(b.StartDate) {
		return ErrInvalidBudgetDates
	}
	return nil
}

// Window returns the spend window checked against the limit: from the start
// date up to the end date, or up to now when the budget is open-ended.
func (b *Budget) Window(now time.Time) (time.Time, time.Time) {
	if b.EndDate != nil {
		return b.StartDate, *b.EndDate
	}
	return b.StartDate, now
}

func (b *Budget) TableName() string {
	return "budgets"
}

func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	default:
		return false
	}
}
