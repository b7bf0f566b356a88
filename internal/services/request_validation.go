package services

import (
	"errors"
	"sort"

	apperrors "finbot/internal/errors"
	"finbot/internal/validation"
)

// validateRequest checks req and reports the first failing field (by name)
// under its code from fieldCodes, or under fallback.
func validateRequest(req interface{}, fallback apperrors.ErrorCode, fieldCodes map[string]apperrors.ErrorCode) error {
	err := validation.GetValidator().Validate(req)
	if err == nil {
		return nil
	}

	var fieldErrors validation.FieldErrors
	if !errors.As(err, &fieldErrors) {
		return &apperrors.AppError{
			Kind:    apperrors.KindInternal,
			Code:    apperrors.SystemUnexpectedError,
			Message: "request could not be validated",
			Err:     err,
		}
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	code := fallback
	for _, field := range fields {
		if fieldCode, ok := fieldCodes[field]; ok {
			code = fieldCode
			break
		}
	}

	return apperrors.WrapValidation(fieldErrors, code)
}
