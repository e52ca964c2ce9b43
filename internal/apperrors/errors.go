package apperrors

import (
	"fmt"
)

// ValidationError represents an error when user input fails validation
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// EncodingError represents an internal invariant violation while building
// the contact record
type EncodingError struct {
	Message string
}

// Error returns the error message
func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Message)
}

// CapacityError represents an error when a payload is too large for the
// QR symbol format
type CapacityError struct {
	Field   string
	Message string
}

// Error returns the error message
func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity error for %s: %s", e.Field, e.Message)
}

// RenderError represents a compositing or font resource failure
type RenderError struct {
	Stage string
	Err   error
}

// Error returns the error message
func (e *RenderError) Error() string {
	return fmt.Sprintf("render error during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *RenderError) Unwrap() error {
	return e.Err
}
