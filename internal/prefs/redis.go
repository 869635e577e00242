package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisThemeKey = "opsboard:prefs:theme"

// RedisStore keeps preferences in Redis for deployments that already run
// one. Values persist without TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store over the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Theme returns the stored theme; a missing key reads as no stored value.
func (s *RedisStore) Theme(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, redisThemeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read theme preference: %w", err)
	}
	return value, nil
}

// SetTheme stores the value, replacing any previous one.
func (s *RedisStore) SetTheme(ctx context.Context, value string) error {
	if err := s.client.Set(ctx, redisThemeKey, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write theme preference: %w", err)
	}
	return nil
}
