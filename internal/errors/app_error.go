package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure for the caller of the finance core.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "internal"
	}
}

// AppError is the typed failure returned by service operations.
// Access to another user's rows is reported as KindNotFound.
type AppError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(kind Kind, code ErrorCode, message string, err error) *AppError {
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// NewValidation reports input that must be rejected before reaching the store.
func NewValidation(code ErrorCode, message string) *AppError {
	return newAppError(KindValidation, code, message, nil)
}

// WrapValidation reports field level failures found by request validation.
func WrapValidation(err error, code ErrorCode) error {
	if err == nil {
		return nil
	}
	return newAppError(KindValidation, code, err.Error(), err)
}

// NewNotFound reports a missing row, or one owned by someone else.
func NewNotFound(code ErrorCode) *AppError {
	return newAppError(KindNotFound, code, "", nil)
}

func NewConflict(code ErrorCode, err error) *AppError {
	return newAppError(KindConflict, code, "", err)
}

// WrapStore wraps an underlying store failure. A nil err yields nil.
func WrapStore(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return newAppError(KindStore, SystemDatabaseError, message, err)
}

// KindOf returns the kind of the first AppError in err's chain.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return SystemInternalError
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return err != nil && KindOf(err) == KindConflict
}

func IsStore(err error) bool {
	return err != nil && KindOf(err) == KindStore
}
