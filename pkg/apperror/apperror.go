// Package apperror carries an HTTP status and a client facing message
// alongside the underlying cause.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error
type AppError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Cause returns the message of the wrapped error, or "" when there is none.
func (e *AppError) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Validation creates a 400 error
func Validation(message string) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusBadRequest}
}

// InvalidInput creates a 400 error keeping the decoding or validation cause
func InvalidInput(message string, err error) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusBadRequest, Err: err}
}

// NotFound creates a 404 error
func NotFound(message string) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusNotFound}
}

// Conflict creates a 409 error
func Conflict(message string) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusConflict}
}

// Unauthorized creates a 401 error
func Unauthorized(message string, err error) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusUnauthorized, Err: err}
}

// Store creates a 500 error for a failed data access
func Store(message string, err error) *AppError {
	return &AppError{Message: message, StatusCode: http.StatusInternalServerError, Err: err}
}

// Internal creates a generic 500 error
func Internal(err error) *AppError {
	return &AppError{Message: "Internal server error", StatusCode: http.StatusInternalServerError, Err: err}
}

// From extracts an *AppError from err. Errors of any other kind become an
// internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
