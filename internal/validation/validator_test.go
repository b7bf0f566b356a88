package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Type     string           `json:"type" validate:"required,transaction_type"`
	Amount   decimal.Decimal  `json:"amount" validate:"positive_decimal"`
	Limit    *decimal.Decimal `json:"limit,omitempty" validate:"omitempty,positive_decimal"`
	Name     string           `json:"name" validate:"required,max=100"`
	Period   string           `json:"period,omitempty" validate:"omitempty,budget_period"`
	Currency string           `json:"currency,omitempty" validate:"omitempty,currency"`
	Timezone string           `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

func valid() sample {
	return sample{Type: "expense", Amount: decimal.RequireFromString("1200.00"), Name: "Food"}
}

func TestValidate_Valid(t *testing.T) {
	s := valid()
	s.Period = "weekly"
	s.Currency = "EUR"
	s.Timezone = "Asia/Tokyo"
	limit := decimal.RequireFromString("0.01")
	s.Limit = &limit

	assert.NoError(t, GetValidator().Validate(s))
}

func TestValidate_PositiveDecimal(t *testing.T) {
	cases := map[string]bool{
		"0.01":    true,
		"48800":   true,
		"0":       false,
		"-5.00":   false,
		"10.005":  false,
		"1000.10": true,
	}

	for amount, ok := range cases {
		s := valid()
		s.Amount = decimal.RequireFromString(amount)
		err := GetValidator().Validate(s)
		if ok {
			assert.NoError(t, err, amount)
			continue
		}

		var fieldErrors FieldErrors
		require.True(t, errors.As(err, &fieldErrors), amount)
		assert.Contains(t, fieldErrors["amount"], "greater than 0", amount)
	}
}

func TestValidate_CollectsFieldErrorsByJSONName(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	s := sample{
		Type:     "transfer",
		Amount:   decimal.Zero,
		Limit:    &negative,
		Name:     strings.Repeat("x", 101),
		Period:   "yearly",
		Currency: "rub",
		Timezone: "Mars/Olympus",
	}

	err := GetValidator().Validate(s)

	var fieldErrors FieldErrors
	require.True(t, errors.As(err, &fieldErrors))
	assert.Equal(t, "must be income or expense", fieldErrors["type"])
	assert.Contains(t, fieldErrors, "amount")
	assert.Contains(t, fieldErrors, "limit")
	assert.Equal(t, "must be at most 100 characters long", fieldErrors["name"])
	assert.Equal(t, "must be daily, weekly or monthly", fieldErrors["period"])
	assert.Contains(t, fieldErrors, "currency")
	assert.Equal(t, "must be a valid IANA timezone", fieldErrors["timezone"])
	assert.Contains(t, err.Error(), "type must be income or expense")
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
