package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "no such row" and "row owned by another
// household" so responses never leak cross-tenant existence.
var ErrNotFound = errors.New("not found")

// ValidationError flags malformed or out-of-range input on a field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
