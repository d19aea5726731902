package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a coordinator error
type ErrorType string

const (
	// ErrorTypeNotFound indicates an entity id was absent on update/delete
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeInvalidState indicates a command was issued in a state that
	// cannot accept it (no logged-in user, no active session)
	ErrorTypeInvalidState ErrorType = "INVALID_STATE"

	// ErrorTypeValidation indicates command input failed validation
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeServiceFailure indicates an external service returned a
	// failure envelope or faulted outright
	ErrorTypeServiceFailure ErrorType = "SERVICE_FAILURE"
)

// AppError is the error shape every coordinator command reports. Commands
// never let a raw fault escape: whatever a service returns is wrapped here
// before it reaches the error slot or a result envelope.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewNotFoundError creates a not found error for the given resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidStateError creates an invalid state error
func NewInvalidStateError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidState,
		Message: message,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewServiceFailureError creates a service failure error
func NewServiceFailureError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeServiceFailure,
		Message: message,
	}
}

// Wrap converts an arbitrary error into an AppError. An existing AppError
// passes through unchanged so the original type survives re-wrapping.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Type:    ErrorTypeServiceFailure,
		Message: message,
		Cause:   err,
	}
}

// TypeOf returns the error type of err, or SERVICE_FAILURE for foreign errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeServiceFailure
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeNotFound
}

// IsInvalidState checks if an error is an invalid state error
func IsInvalidState(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeInvalidState
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeValidation
}

// IsServiceFailure checks if an error is a service failure
func IsServiceFailure(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeServiceFailure
}
