// Copyright (c) 2026 Galereya. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// The translation is a pure mapping: no state, no side effects. Storage
// repositories call [Wrap] on every pgx error so that the rest of the
// system only ever sees [apperr.AppError] values.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/galereya/api/internal/platform/apperr"
)

var (
	// ErrNotFound is the standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is the generic unique-constraint violation. Services
	// replace it with an entity-specific message before it reaches a client.
	ErrDuplicate = apperr.DuplicateKey("A record with this value already exists")
)

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. It hides internal database details from the client
// while classifying the error type. The action string names the failed
// operation and is preserved for server-side logs via the error cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicate
		case pgerrcode.InvalidTextRepresentation:
			// A malformed UUID in a lookup cannot match any row.
			return ErrNotFound
		case pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.StringDataRightTruncationWarning:
			// Length constraints are validated in the service layer; a DB
			// truncation error still maps to the same client-facing kind.
			return apperr.ValidationError("Field value is too long")
		}
	}

	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates an internal failure with the storage action that
// produced it, for log correlation.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }
func (e *actionError) Unwrap() error { return e.cause }
