// Copyright (c) 2026 Galereya. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers
// or storage. It ensures that business logic only operates on semantically
// valid data. Incoming JSON payloads are loosely typed on the wire, so every
// mutating operation validates against an explicit rule set here rather
// than trusting ambient shape.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/galereya/api/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator collects field-level validation errors via a fluent, chainable
// API. Required-field failures are tracked separately from other constraint
// failures so that [Validator.Err] can report the correct top-level kind.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	missing []apperr.FieldError
	errs    []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.missing = append(v.missing, apperr.FieldError{
			Field:   field,
			Message: "This field is required",
		})
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// NonNegative fails if the value is below zero.
func (v *Validator) NonNegative(field string, value float64) *Validator {
	if value < 0 {
		v.add(field, "Must not be negative")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns the accumulated failures as a single [apperr.AppError], or
// nil if all rules passed.
//
// # Error Kind
//
// When every failure is an absent required field, the result is
// MISSING_REQUIRED_FIELD; any other constraint failure in the chain turns
// the whole report into VALIDATION_ERROR (with all details attached).
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.missing) == 0 && len(v.errs) == 0 {
		return nil
	}

	if len(v.errs) == 0 {
		return apperr.MissingField(v.missing...)
	}

	all := make([]apperr.FieldError, 0, len(v.missing)+len(v.errs))
	all = append(all, v.missing...)
	all = append(all, v.errs...)
	return apperr.ValidationError("Validation failed", all...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.missing) > 0 || len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
