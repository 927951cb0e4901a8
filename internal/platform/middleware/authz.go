// Copyright (c) 2026 Galereya. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/ctxutil"
	"github.com/galereya/api/internal/platform/respond"
	"github.com/galereya/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in
// middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the auth
// service implementation, allowing mocks to be injected during unit
// testing. The auth service's implementation also checks that the token's
// session is still live in Redis, so a revoked token fails here even
// before its JWT expiry.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the bearer token from the
// Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, parse and verify the token via [TokenVerifier].
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// Anonymous access: public catalog reads need no token.
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				respond.Error(writer, request, apperr.Unauthorized("Malformed Authorization header"))
				return
			}

			claims, err := verifier.VerifyToken(request.Context(), tokenString)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose context carries no admin claims.
//
// It must sit below [Authenticate] in the chain; it never parses tokens
// itself.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())

		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		if claims.Role != string(sec.RoleAdmin) {
			respond.Error(writer, request, apperr.Forbidden("Administrator access required"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
