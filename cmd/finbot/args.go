package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

func parseAmount(value, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, apperrors.NewValidation(apperrors.ValidationInvalidFormat,
			fmt.Sprintf("%s must be a decimal number, got '%s'", field, value))
	}
	return amount, nil
}

func parseOptionalAmount(value, field string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	amount, err := parseAmount(value, field)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func parseID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, apperrors.NewValidation(apperrors.ValidationInvalidFormat,
			fmt.Sprintf("%s must be a UUID, got '%s'", field, value))
	}
	return id, nil
}

// parseTime accepts RFC 3339, "2006-01-02 15:04" or a bare date. Times
// without an offset are read in loc. A bare date is the start of that day
// unless endOfDay is set, in which case it is the last instant of the day.
func parseTime(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dateTimeLayout, value, loc); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t.UTC(), nil
	}

	return time.Time{}, apperrors.NewValidation(apperrors.ValidationInvalidDate,
		fmt.Sprintf("cannot parse '%s': use YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC 3339", value))
}

func parseOptionalTime(value string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseTime(value, loc, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// monthToDate returns the start of the current month in loc and now.
func monthToDate(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start.UTC(), now.UTC()
}

// resolveCategory turns a category id or name into an id held by the user.
// An empty reference means no category.
func resolveCategory(ctx context.Context, tx *services.Finance, userID uuid.UUID, ref string) (*uuid.UUID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}

	if id, err := uuid.Parse(ref); err == nil {
		return &id, nil
	}

	categories, err := tx.Categories.GetUserCategories(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if category := findCategoryByName(categories, ref); category != nil {
		return &category.ID, nil
	}

	return nil, apperrors.NewNotFound(apperrors.CategoryNotFound)
}

func findCategoryByName(categories []models.Category, name string) *models.Category {
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}

func userLocation(user *models.User) (*time.Location, error) {
	loc, err := user.Location()
	if err != nil {
		return nil, apperrors.NewValidation(apperrors.UserInvalidTimezone, err.Error())
	}
	return loc, nil
}
