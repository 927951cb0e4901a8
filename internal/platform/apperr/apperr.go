// Copyright (c) 2026 Galereya. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the
Galereya API.

It provides a rich error type that bridges the gap between low-level
storage errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a
    client-safe message.
  - Taxonomy: MISSING_REQUIRED_FIELD, VALIDATION_ERROR, DUPLICATE_KEY,
    NOT_FOUND, UNAUTHORIZED, FORBIDDEN, INTERNAL_ERROR.
  - Mapping: Explicit mapping from each code to a standard HTTP status.

Every error that leaves the service layer should be wrapped as an
[AppError] to ensure consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Machine-readable error codes. A DUPLICATE_KEY is kept distinct from a
// generic VALIDATION_ERROR because the remedy differs: the client must pick
// a different name rather than fix the field content.
const (
	CodeMissingField = "MISSING_REQUIRED_FIELD"
	CodeValidation   = "VALIDATION_ERROR"
	CodeDuplicateKey = "DUPLICATE_KEY"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the Galereya API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to
// clients to avoid leaking internal implementation details (e.g., SQL
// queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field messages for validation-class responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level failure.
type FieldError struct {
	// Field is the JSON field name that failed.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Category") // Returns "Category not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// DuplicateKey creates a 409 [AppError] for unique-constraint collisions.
func DuplicateKey(msg string) *AppError {
	return &AppError{
		Code:       CodeDuplicateKey,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// MissingField creates a 400 [AppError] listing each absent required field.
func MissingField(details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeMissingField,
		Message:    "Missing required fields",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side
// error. The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsCode reports whether err carries an [*AppError] with the given code.
func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
