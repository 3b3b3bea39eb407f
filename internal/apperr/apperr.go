// Package apperr defines the client-facing error taxonomy. Every error that
// leaves an API handler is converted to an *Error exactly once.
package apperr

import (
	"errors"
	"net/http"
)

// Error codes.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeDuplicate     = "DUPLICATE"
	CodeNotFound      = "NOT_FOUND"
	CodePathTraversal = "PATH_TRAVERSAL"
	CodeInternal      = "INTERNAL_ERROR"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
)

// Error carries an HTTP status, a machine-readable code and a message that is
// safe to show to the client. Cause is only ever logged.
type Error struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	Details    []FieldError `json:"details,omitempty"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// Validation creates a 400 error for malformed, missing or out-of-set fields.
func Validation(msg string, details ...FieldError) *Error {
	return &Error{
		Code:       CodeValidation,
		Message:    msg,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Duplicate creates a 400 error for a unique key that is already taken.
func Duplicate(msg string) *Error {
	return &Error{
		Code:       CodeDuplicate,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 404 error.
func NotFound(msg string) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
	}
}

// PathTraversal creates a 400 error for a path that tries to leave its root.
func PathTraversal(msg string) *Error {
	return &Error{
		Code:       CodePathTraversal,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a 500 error. msg must be generic; cause is logged only.
func Internal(msg string, cause error) *Error {
	return &Error{
		Code:       CodeInternal,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Unavailable creates a 503 error.
func Unavailable(msg string, cause error) *Error {
	return &Error{
		Code:       CodeUnavailable,
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// As extracts the *Error from err's chain, or returns nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
