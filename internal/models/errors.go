package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists (e.g., duplicate email)
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrForbidden is returned when the caller is authenticated but does
	// not own the resource it is acting on
	ErrForbidden = errors.New("forbidden")

	// ErrUnknownContentType is returned by the prompt registry for a
	// content type outside the recognized set
	ErrUnknownContentType = errors.New("unknown content type")
)

// ValidationError carries field-level messages for a request that failed
// shape validation. It maps to a 400 response with the message list.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError creates a ValidationError from field messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
