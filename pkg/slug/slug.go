// Copyright (c) 2026 Galereya. All rights reserved.

// Package slug derives URL-safe identifiers from display names.
//
// # Usage
//
// Slugs are used as human-readable identifiers for catalog categories
// (e.g., "живопись", "стикеры-telegram"). Unlike transliterating slug
// libraries, this package preserves Cyrillic letters: the public site
// serves Cyrillic URLs directly.
package slug

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Make converts a display name into a lowercase URL slug.
//
// # Transformation Pipeline
//
//  1. Normalizes to NFC so composed and decomposed forms slug identically.
//  2. Converts to lowercase.
//  3. Drops every rune outside the allow-list (Cyrillic а-я, Latin a-z,
//     digits, whitespace).
//  4. Collapses whitespace runs into a single hyphen and trims the ends.
//
// The allow-list is exactly [а-яa-z0-9] plus whitespace; ё sits outside the
// а-я range and is dropped. Identical names always yield identical slugs,
// which is what surfaces a duplicate name as a unique-constraint violation
// on insert.
func Make(name string) string {
	s := norm.NFC.String(name)
	s = strings.ToLower(s)

	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'а' && r <= 'я':
			return r
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return r
		}
		return -1
	}, s)

	// Fields both collapses interior whitespace runs and trims the ends.
	return strings.Join(strings.Fields(s), "-")
}
