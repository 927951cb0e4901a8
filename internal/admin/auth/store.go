// Copyright (c) 2026 Galereya. All rights reserved.

package auth

import (
	"context"
	"time"
)

// SessionRepository persists revocable admin sessions.
//
// A session exists from login until logout or TTL expiry. Token
// verification requires the session to still be present, so deleting the
// record invalidates every token bound to it immediately.
type SessionRepository interface {
	Set(ctx context.Context, sessionID, email string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}
