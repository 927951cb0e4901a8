// Copyright (c) 2026 Galereya. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/galereya/api/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// The TTL on the key matches the access token lifetime, so an abandoned
// session disappears on its own without a cleanup job.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (repository *RedisSessionRepository) Set(ctx context.Context, sessionID, email string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Set(ctx, key, email, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

func (repository *RedisSessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return true, nil
}

func (repository *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := constants.RedisPrefixSession + sessionID

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
