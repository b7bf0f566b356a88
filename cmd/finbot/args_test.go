package main

import (
	"testing"
	"time"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount(" 1200.50 ", "amount")
	require.NoError(t, err)
	assert.Equal(t, "1200.5", amount.String())

	_, err = parseAmount("twelve", "amount")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, apperrors.ValidationInvalidFormat, apperrors.CodeOf(err))

	empty, err := parseOptionalAmount("", "daily_limit")
	assert.NoError(t, err)
	assert.Nil(t, empty)
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	parsed, err := parseID(id.String(), "transaction_id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parseID("42", "transaction_id")
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseTime(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	cases := []struct {
		name     string
		value    string
		endOfDay bool
		expected time.Time
	}{
		{"rfc3339 keeps its offset", "2024-03-01T10:00:00Z", false, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"local date time", "2024-03-01 10:00", false, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)},
		{"date is start of local day", "2024-03-01", false, time.Date(2024, 2, 29, 21, 0, 0, 0, time.UTC)},
		{"end date is last instant of local day", "2024-03-01", true, time.Date(2024, 3, 1, 20, 59, 59, 999999999, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := parseTime(tc.value, moscow, tc.endOfDay)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed), "got %s", parsed)
			assert.Equal(t, time.UTC, parsed.Location())
		})
	}

	_, err = parseTime("yesterday", moscow, false)
	assert.Equal(t, apperrors.ValidationInvalidDate, apperrors.CodeOf(err))
}

func TestMonthToDate(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// 22:30 UTC on May 31st is already June 1st in Moscow
	now := time.Date(2024, 5, 31, 22, 30, 0, 0, time.UTC)

	start, end := monthToDate(now, moscow)

	assert.True(t, time.Date(2024, 5, 31, 21, 0, 0, 0, time.UTC).Equal(start))
	assert.True(t, now.Equal(end))
}

func TestFindCategoryByName(t *testing.T) {
	categories := []models.Category{
		{ID: uuid.New(), Name: "Food"},
		{ID: uuid.New(), Name: "Cafes & Restaurants"},
	}

	found := findCategoryByName(categories, "cafes & restaurants")
	require.NotNil(t, found)
	assert.Equal(t, categories[1].ID, found.ID)
	assert.Nil(t, findCategoryByName(categories, "Pets"))
}
