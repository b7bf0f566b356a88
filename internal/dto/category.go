package dto

// CategoryRequest represents a custom category created by a user
type CategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Icon     string `json:"icon" validate:"required,min=1,max=10"`
	IsIncome bool   `json:"is_income"`
}
