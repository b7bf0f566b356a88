package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxCategoryNameLength = 100
	MaxCategoryIconLength = 10
)

var (
	ErrInvalidCategoryName = errors.New("category name must be between 1 and 100 characters")
	ErrInvalidCategoryIcon = errors.New("category icon must be at most 10 characters")
)

// Category is shared by every user holding it; Name is globally unique.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_name" json:"name"`
	Icon      string    `gorm:"type:varchar(10);not null" json:"icon"`
	IsIncome  bool      `gorm:"not null" json:"is_income"`
	IsDefault bool      `gorm:"not null;index" json:"is_default"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return c.Validate()
}

func (c *Category) Validate() error {
	if err := ValidateCategoryName(c.Name); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.Icon) > MaxCategoryIconLength {
		return ErrInvalidCategoryIcon
	}
	return nil
}

// Polarity returns the transaction type matching the category.
func (c *Category) Polarity() string {
	if c.IsIncome {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

func (c *Category) TableName() string {
	return "categories"
}

func ValidateCategoryName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxCategoryNameLength {
		return ErrInvalidCategoryName
	}
	return nil
}

// DefaultCategories returns the system categories every user is given.
// The last seven were added after the first release.
func DefaultCategories() []Category {
	defaults := []struct {
		name     string
		icon     string
		isIncome bool
	}{
		{"Food", "🍔", false},
		{"Transport", "🚗", false},
		{"Housing", "🏠", false},
		{"Clothing", "👕", false},
		{"Entertainment", "🎬", false},
		{"Health", "💊", false},
		{"Education", "📚", false},
		{"Gifts", "🎁", false},
		{"Communication", "📱", false},
		{"Shopping", "🛍", false},
		{"Salary", "💰", true},
		{"Side Income", "💼", true},
		{"Gift", "🎉", true},
		{"Investments", "📈", true},
		{"Refund", "↩", true},
		{"Children", "🧸", false},
		{"Beauty", "💄", false},
		{"Loan", "🏦", false},
		{"Cafes & Restaurants", "☕", false},
		{"Subscriptions", "🔁", false},
		{"Groceries", "🛒", false},
		{"Travel", "✈", false},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			Name:      d.name,
			Icon:      d.icon,
			IsIncome:  d.isIncome,
			IsDefault: true,
			IsActive:  true,
		})
	}
	return categories
}
