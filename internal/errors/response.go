package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
)

// ErrorResponse represents the failure rendered to a caller of the finance core
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates an error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Kind:    kindForCode(code).String(),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details.
// Details are sorted by field name.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// FromError renders any error returned by the services layer.
// Store and unexpected failures never expose the underlying error text.
func FromError(err error, traceID string) *ErrorResponse {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return NewErrorResponse(SystemUnexpectedError, traceID)
	}

	switch appErr.Kind {
	case KindStore, KindInternal:
		response := NewErrorResponse(appErr.Code, traceID)
		response.Error.Kind = appErr.Kind.String()
		return response
	default:
		response := NewErrorResponse(appErr.Code, traceID, WithMessage(appErr.Message))
		response.Error.Kind = appErr.Kind.String()
		return response
	}
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// ExitCode returns the process exit status for the error code
func ExitCode(code ErrorCode) int {
	switch kindForCode(code) {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindConflict:
		return 4
	case KindStore:
		return 5
	default:
		return 1
	}
}

func kindForCode(code ErrorCode) Kind {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, UserInvalidTimezone,
		UserInvalidLimit, CategoryInvalidName, CategoryInvalidIcon,
		TransactionInvalidAmount, TransactionInvalidType, TransactionInvalidPeriod,
		BudgetInvalidLimit, BudgetInvalidPeriod, BudgetInvalidDates:
		return KindValidation

	case UserNotFound, CategoryNotFound, TransactionNotFound, BudgetNotFound:
		return KindNotFound

	case CategoryAlreadyExists:
		return KindConflict

	case SystemDatabaseError:
		return KindStore

	default:
		return KindInternal
	}
}

// ExitCode returns the process exit status for the response
func (er *ErrorResponse) ExitCode() int {
	return ExitCode(ErrorCode(er.Error.Code))
}

// IsClientError reports whether the caller supplied bad input or addressed a missing row
func (er *ErrorResponse) IsClientError() bool {
	kind := kindForCode(ErrorCode(er.Error.Code))
	return kind == KindValidation || kind == KindNotFound || kind == KindConflict
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
