package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultCurrency = "RUB"
	DefaultTimezone = "Europe/Moscow"
)

var (
	ErrInvalidTelegramID = errors.New("telegram id is required")
	ErrInvalidCurrency   = errors.New("currency must be a 3 letter code")
	ErrInvalidLimit      = errors.New("spending limit must be positive")
)

// User is keyed by the messaging platform's numeric id.
type User struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TelegramID           int64            `gorm:"not null;uniqueIndex:uq_users_telegram_id" json:"telegram_id"`
	Username             *string          `gorm:"type:varchar(255)" json:"username,omitempty"`
	FirstName            *string          `gorm:"type:varchar(255)" json:"first_name,omitempty"`
	LastName             *string          `gorm:"type:varchar(255)" json:"last_name,omitempty"`
	Currency             string           `gorm:"type:varchar(3);not null" json:"currency"`
	Timezone             string           `gorm:"type:varchar(50);not null" json:"timezone"`
	NotificationsEnabled bool             `gorm:"not null" json:"notifications_enabled"`
	DailyLimit           *decimal.Decimal `gorm:"type:decimal(12,2)" json:"daily_limit,omitempty"`
	MonthlyLimit         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"monthly_limit,omitempty"`
	CreatedAt            time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Currency == "" {
		u.Currency = DefaultCurrency
	}
	if u.Timezone == "" {
		u.Timezone = DefaultTimezone
	}

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// map based updates carry an empty struct
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if u.TelegramID == 0 {
		return ErrInvalidTelegramID
	}

	if len(u.Currency) != 3 {
		return ErrInvalidCurrency
	}

	if _, err := u.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", u.Timezone, err)
	}

	if u.DailyLimit != nil && !u.DailyLimit.IsPositive() {
		return ErrInvalidLimit
	}
	if u.MonthlyLimit != nil && !u.MonthlyLimit.IsPositive() {
		return ErrInvalidLimit
	}

	return nil
}

// Location resolves the user's timezone.
func (u *User) Location() (*time.Location, error) {
	return time.LoadLocation(u.Timezone)
}

// DisplayName prefers the first name, then the username.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != nil && *u.FirstName != "":
		return *u.FirstName
	case u.Username != nil && *u.Username != "":
		return *u.Username
	default:
		return fmt.Sprintf("user %d", u.TelegramID)
	}
}

func (u *User) TableName() string {
	return "users"
}
