package inventory

import (
	"errors"
	"fmt"
)

// ValidationError represents a rejected mutation.
//
// Every validation failure is all-or-nothing: the Store is unchanged and
// the error carries the offending value so the presentation layer can
// render context-specific guidance instead of a bare message.
type ValidationError struct {
	// Code identifies the error category.
	Code ValidationErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the rejected input ("name", "quantity", "price", "amount", "id").
	Field string

	// Value is the offending value, formatted for display.
	Value string
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode string

const (
	// ErrCodeEmptyName indicates a blank or whitespace-only item name.
	ErrCodeEmptyName ValidationErrorCode = "EMPTY_NAME"

	// ErrCodeInvalidQuantity indicates a quantity below 1 on add or increase.
	ErrCodeInvalidQuantity ValidationErrorCode = "INVALID_QUANTITY"

	// ErrCodeNegativePrice indicates a price below 0.
	ErrCodeNegativePrice ValidationErrorCode = "NEGATIVE_PRICE"

	// ErrCodeUnknownCategory indicates a category outside the enumeration.
	ErrCodeUnknownCategory ValidationErrorCode = "UNKNOWN_CATEGORY"

	// ErrCodeInvalidAmount indicates a removal amount outside [1, quantity].
	ErrCodeInvalidAmount ValidationErrorCode = "INVALID_AMOUNT"

	// ErrCodeNotFound indicates the addressed item is not in the store.
	ErrCodeNotFound ValidationErrorCode = "NOT_FOUND"
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (%s=%q)", e.Code, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidAmount reports whether err is an out-of-range removal amount.
func IsInvalidAmount(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == ErrCodeInvalidAmount
	}
	return false
}

// IsNotFound reports whether err is an unknown-item error.
func IsNotFound(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == ErrCodeNotFound
	}
	return false
}

func newValidationError(code ValidationErrorCode, message, field, value string) *ValidationError {
	return &ValidationError{Code: code, Message: message, Field: field, Value: value}
}
