// Copyright (c) 2026 Galereya. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/ctxutil"
	"github.com/galereya/api/internal/platform/sec"
	"github.com/galereya/api/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target
// structure. It returns validate.ErrInvalidJSON if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID retrieves a named URL parameter (UUID) from the request.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Claims extracts the authenticated admin claims from the request context.
// Returns nil if the request is not authenticated.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated and returns the
// claims, or apperr.Unauthorized if the request carries no valid token.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}
