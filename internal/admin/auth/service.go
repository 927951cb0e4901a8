// Copyright (c) 2026 Galereya. All rights reserved.

/*
Package auth implements the single-administrator login flow.

The gallery has exactly one admin whose credentials live in configuration.
Login issues a short-lived HS256 access token bound to a Redis session
record; logout deletes the record, revoking every token that references
it before the JWT itself expires.
*/
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/config"
	"github.com/galereya/api/internal/platform/constants"
	"github.com/galereya/api/internal/platform/sec"
	"github.com/galereya/api/pkg/uuidv7"
)

type Service struct {
	adminEmail        string
	adminPasswordHash string
	sessions          SessionRepository
	tokens            *sec.TokenService
	logger            *slog.Logger
}

// NewService constructs the auth service. The configured plaintext admin
// password is hashed once here so it never lives in memory beyond startup.
func NewService(cfg *config.Config, sessions SessionRepository, tokens *sec.TokenService, logger *slog.Logger) (*Service, error) {
	passwordHash, err := sec.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to hash admin password: %w", err)
	}

	return &Service{
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: passwordHash,
		sessions:          sessions,
		tokens:            tokens,
		logger:            logger,
	}, nil
}

// LoginResult is returned to a successfully authenticated admin.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	User        AdminUser `json:"user"`
}

// AdminUser is the public identity block inside a login response.
type AdminUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login validates the credential pair and opens a new session.
//
// Both the email and password comparisons run on every attempt, and the
// client always receives the same UNAUTHORIZED response, so a probe cannot
// tell which half of the pair was wrong.
func (service *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(service.adminEmail)) == 1
	passwordMatch := sec.CheckPasswordHash(password, service.adminPasswordHash)

	if !emailMatch || !passwordMatch {
		service.logger.Warn("admin_login_rejected", slog.String("email", email))
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	sessionID := uuidv7.New()
	if err := service.sessions.Set(ctx, sessionID, email, constants.AccessTokenTTL); err != nil {
		return nil, apperr.Internal(err)
	}

	accessToken, err := service.tokens.GenerateAccessToken(sessionID, email, string(sec.RoleAdmin), constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("admin_login", slog.String("session_id", sessionID))
	return &LoginResult{
		AccessToken: accessToken,
		User:        AdminUser{Email: email, Role: string(sec.RoleAdmin)},
	}, nil
}

// Logout revokes the session carried by the authenticated request.
func (service *Service) Logout(ctx context.Context, claims *sec.AuthClaims) error {
	if err := service.sessions.Delete(ctx, claims.SessionID); err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("admin_logout", slog.String("session_id", claims.SessionID))
	return nil
}

// VerifyToken implements [middleware.TokenVerifier].
//
// A token is only as alive as its session: a structurally valid JWT whose
// session record has been revoked (or has expired in Redis) is rejected.
func (service *Service) VerifyToken(ctx context.Context, tokenStr string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}

	alive, err := service.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !alive {
		return nil, apperr.Unauthorized("Session has been revoked")
	}

	return claims, nil
}
