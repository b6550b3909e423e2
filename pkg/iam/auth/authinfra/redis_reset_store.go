package authinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

const resetKeyPrefix = "auth:reset:"

// RedisResetTokenStore keeps password reset tokens in Redis with a TTL.
type RedisResetTokenStore struct {
	client *redis.Client
}

// NewRedisResetTokenStore creates a Redis-backed reset token store
func NewRedisResetTokenStore(client *redis.Client) *RedisResetTokenStore {
	return &RedisResetTokenStore{client: client}
}

// Put stores a token pointing at a usuario, expiring after ttl
func (s *RedisResetTokenStore) Put(ctx context.Context, token string, userID kernel.UserID, ttl time.Duration) error {
	err := s.client.Set(ctx, resetKeyPrefix+token, string(userID), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

// Take resolves and deletes a token in one step so it cannot be replayed
func (s *RedisResetTokenStore) Take(ctx context.Context, token string) (kernel.UserID, error) {
	value, err := s.client.GetDel(ctx, resetKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve reset token: %w", err)
	}
	return kernel.UserID(value), nil
}
