package dto

import (
	"github.com/shopspring/decimal"
)

// UserProfile carries the chat profile fields seen on first contact
type UserProfile struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,max=255"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=255"`
}

// UpdateUserRequest represents the user settings that can be changed
type UpdateUserRequest struct {
	Username             *string          `json:"username,omitempty" validate:"omitempty,max=255"`
	FirstName            *string          `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName             *string          `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Currency             *string          `json:"currency,omitempty" validate:"omitempty,currency"`
	Timezone             *string          `json:"timezone,omitempty" validate:"omitempty,timezone"`
	NotificationsEnabled *bool            `json:"notifications_enabled,omitempty"`
	DailyLimit           *decimal.Decimal `json:"daily_limit,omitempty" validate:"omitempty,positive_decimal"`
	MonthlyLimit         *decimal.Decimal `json:"monthly_limit,omitempty" validate:"omitempty,positive_decimal"`
	ClearDailyLimit      bool             `json:"clear_daily_limit,omitempty"`
	ClearMonthlyLimit    bool             `json:"clear_monthly_limit,omitempty"`
}

// Fields builds the column map applied by the user repository
func (r UpdateUserRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})

	if r.Username != nil {
		fields["username"] = *r.Username
	}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Currency != nil {
		fields["currency"] = *r.Currency
	}
	if r.Timezone != nil {
		fields["timezone"] = *r.Timezone
	}
	if r.NotificationsEnabled != nil {
		fields["notifications_enabled"] = *r.NotificationsEnabled
	}

	switch {
	case r.ClearDailyLimit:
		fields["daily_limit"] = nil
	case r.DailyLimit != nil:
		fields["daily_limit"] = *r.DailyLimit
	}

	switch {
	case r.ClearMonthlyLimit:
		fields["monthly_limit"] = nil
	case r.MonthlyLimit != nil:
		fields["monthly_limit"] = *r.MonthlyLimit
	}

	return fields
}
