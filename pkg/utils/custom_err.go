package utils

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrGeneration = errors.New("failed to generate survey questions")
	ErrAnalysis   = errors.New("failed to analyze survey responses")
)

// ValidationError wraps ErrValidation with a caller-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError wraps ErrNotFound with the name of the missing entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}
