package errors

import (
	"fmt"
	"net/http"
)

// InvalidTransitionError is returned when an order status change is not a
// legal edge of the order state machine. It implements the AppError interface.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an invalid transition error
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition from %q to %q", e.From, e.To)
}

// HTTPCode returns the HTTP status code
func (e *InvalidTransitionError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InvalidTransitionError) ErrorCode() string {
	return "INVALID_TRANSITION"
}

// Message returns the user-friendly error message
func (e *InvalidTransitionError) Message() string {
	return "the order cannot change to the requested status"
}

// Details returns detailed error information
func (e *InvalidTransitionError) Details() string {
	return fmt.Sprintf("current status %q does not allow transition to %q", e.From, e.To)
}

// DispatchFailedError is returned when the whole push dispatch call fails,
// as opposed to partial per-recipient failures which are reported in the result.
type DispatchFailedError struct {
	err     error
	details string
}

// NewDispatchFailedError creates a dispatch failure error
func NewDispatchFailedError(err error, details string) *DispatchFailedError {
	return &DispatchFailedError{err: err, details: details}
}

// Error implements the error interface
func (e *DispatchFailedError) Error() string {
	if e.err != nil {
		return "push dispatch failed: " + e.err.Error()
	}
	return "push dispatch failed"
}

// Unwrap returns the underlying provider error
func (e *DispatchFailedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DispatchFailedError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DispatchFailedError) ErrorCode() string {
	return "DISPATCH_FAILED"
}

// Message returns the user-friendly error message
func (e *DispatchFailedError) Message() string {
	return "push notification dispatch failed"
}

// Details returns detailed error information
func (e *DispatchFailedError) Details() string {
	return e.details
}
