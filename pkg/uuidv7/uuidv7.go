// Copyright (c) 2026 Galereya. All rights reserved.

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Why UUIDv7?
//
// It is the primary-key type for both catalog tables. Time-sortable IDs keep
// the PostgreSQL B-tree indexes append-friendly, and the creation-time
// ordering of artwork listings falls out of the ID ordering as a bonus.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable; entropy failure is
// an unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
