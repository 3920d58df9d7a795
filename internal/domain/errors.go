package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound is returned when a record referenced by id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a record fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
)

// invalid wraps a validation message with ErrInvalidInput
func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound builds an ErrNotFound error for the given entity and id
func NotFound(entity string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s %w", entity, id, ErrNotFound)
}

// checkLength validates the rune length of a required or optional text field
func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		if min == 1 {
			return invalid("%s is required", field)
		}
		return invalid("%s must be at least %d characters", field, min)
	}
	if n > max {
		return invalid("%s must be at most %d characters", field, max)
	}
	return nil
}

// checkOptional validates an optional text field
func checkOptional(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return checkLength(field, *value, 0, max)
}

// TrimOptional trims the value and turns empty strings into nil
func TrimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
