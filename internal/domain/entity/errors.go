package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors of the article domain.
var (
	// ErrNotFound indicates the requested article does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates the provided input is structurally invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates one or more article fields failed validation.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError reports which article field failed validation and why.
// The HTTP layer maps it to a 400 response; its message is considered safe
// to return to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
