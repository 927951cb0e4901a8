// Copyright (c) 2026 Galereya. All rights reserved.

package sec

// # Roles

// Role represents the authorization level granted to a token.
//
// The gallery has a single administrator today; the role claim exists so
// that read-only staff tokens can be added without changing the token
// format.
type Role string

const (
	// RoleAdmin grants full catalog mutation rights.
	RoleAdmin Role = "admin"

	// RoleViewer is reserved for future read-only staff access.
	RoleViewer Role = "viewer"
)
