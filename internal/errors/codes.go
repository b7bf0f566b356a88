package errors

// ErrorCode represents a standardized error code reported to callers of the finance core
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound        ErrorCode = "USER_001"
	UserInvalidTimezone ErrorCode = "USER_002"
	UserInvalidLimit    ErrorCode = "USER_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryInvalidName   ErrorCode = "CATEGORY_002"
	CategoryInvalidIcon   ErrorCode = "CATEGORY_003"
	CategoryAlreadyExists ErrorCode = "CATEGORY_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionInvalidPeriod ErrorCode = "TRANSACTION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidLimit  ErrorCode = "BUDGET_002"
	BudgetInvalidPeriod ErrorCode = "BUDGET_003"
	BudgetInvalidDates  ErrorCode = "BUDGET_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default user-facing messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid format",
	ValidationOutOfRange:    "Value is out of acceptable range",
	ValidationInvalidDate:   "Invalid date",

	// User errors
	UserNotFound:        "User not found",
	UserInvalidTimezone: "Unknown timezone",
	UserInvalidLimit:    "Spending limit must be greater than zero",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryInvalidName:   "Category name must be between 1 and 100 characters",
	CategoryInvalidIcon:   "Category icon must be between 1 and 10 characters",
	CategoryAlreadyExists: "Category already exists",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Amount must be greater than zero",
	TransactionInvalidType:   "Transaction type must be income or expense",
	TransactionInvalidPeriod: "Period start must not be after period end",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidLimit:  "Budget limit must be greater than zero",
	BudgetInvalidPeriod: "Budget period must be daily, weekly or monthly",
	BudgetInvalidDates:  "Budget end date must not be before its start date",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "Database operation failed",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if an error code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
