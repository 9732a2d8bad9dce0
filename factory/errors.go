package factory

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingType is returned when a definition has no type identifier.
	ErrMissingType = errors.New("differential type is required")

	// ErrUnknownCategory is returned when a category is not one of the four known ones.
	ErrUnknownCategory = errors.New("unknown differential category")

	// ErrInvalidRange is returned when a range is malformed.
	ErrInvalidRange = errors.New("invalid range")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// CategoryError names the type carrying an unknown category.
type CategoryError struct {
	Type     string
	Category string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%s: unknown category %q", e.Type, e.Category)
}

func (e *CategoryError) Unwrap() error {
	return ErrUnknownCategory
}

// RangeError describes a malformed value or frequency range.
type RangeError struct {
	Type   string
	Field  string
	Range  RangeJSON
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s.%s [%v, %v] %q: %s", e.Type, e.Field, e.Range.Min, e.Range.Max, e.Range.Unit, e.Reason)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// IsClientError returns true if the error is due to an invalid definition.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingType) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrInvalidRange)
}
