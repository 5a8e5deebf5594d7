package csvcodec

import (
	"errors"
	"fmt"
)

// ParseError represents a malformed line in persisted inventory text.
//
// Line numbers are 1-based and count from the top of the input, so the
// header is line 1 and the first data line is line 2.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Line is the 1-based line number of the malformed line.
	Line int

	// Field names the field that failed ("category", "quantity", ...).
	// Empty for structural errors such as a wrong field count.
	Field string

	// Value is the offending raw text.
	Value string
}

// ParseErrorCode categorizes parse errors.
type ParseErrorCode string

const (
	// ErrCodeWrongFieldCount indicates a line without exactly five fields.
	ErrCodeWrongFieldCount ParseErrorCode = "WRONG_FIELD_COUNT"

	// ErrCodeUnknownCategory indicates a category field that matches no
	// canonical category name.
	ErrCodeUnknownCategory ParseErrorCode = "UNKNOWN_CATEGORY"

	// ErrCodeInvalidQuantity indicates an unparsable quantity field.
	ErrCodeInvalidQuantity ParseErrorCode = "INVALID_QUANTITY"

	// ErrCodeInvalidPrice indicates an unparsable price field.
	ErrCodeInvalidPrice ParseErrorCode = "INVALID_PRICE"

	// ErrCodeInvalidTimestamp indicates an unparsable last-transaction field.
	ErrCodeInvalidTimestamp ParseErrorCode = "INVALID_TIMESTAMP"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: %s: cannot parse %q as %s", e.Line, e.Code, e.Value, e.Field)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Code, e.Value)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsUnknownCategory reports whether err is an unknown-category parse error.
func IsUnknownCategory(err error) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeUnknownCategory
	}
	return false
}
