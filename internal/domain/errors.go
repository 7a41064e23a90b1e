package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrRateLimited  = errors.New("rate limited")
	ErrHoneypot     = errors.New("honeypot field filled")
	ErrInvalidPhone = errors.New("invalid phone")
	ErrNotDelivered = errors.New("lead not delivered")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
	cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap exposes ErrValidation and, when set, the more specific cause
// (for example ErrInvalidPhone).
func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrValidation, e.cause}
	}
	return []error{ErrValidation}
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewPhoneError reports an invalid phone number. It matches both
// ErrValidation and ErrInvalidPhone.
func NewPhoneError(phone string) *ValidationError {
	msg := "must be +79XXXXXXXXX"
	if phone == "" {
		msg = "required"
	}
	return &ValidationError{
		Errors: []FieldError{{Field: "phone", Message: msg}},
		cause:  ErrInvalidPhone,
	}
}
