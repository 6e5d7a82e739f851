package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const userCacheTTL = 15 * time.Minute

// UserCache memoizes id→username lookups in Redis. Users are immutable once
// created, so a TTL only bounds memory, not staleness.
// Key format: user:<user_id>
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached username for userID, or "" on a miss.
func (c *UserCache) Get(ctx context.Context, userID string) (string, error) {
	username, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("user cache get: %w", err)
	}
	return username, nil
}

// Set records the username for userID (expires after userCacheTTL).
func (c *UserCache) Set(ctx context.Context, userID, username string) error {
	return c.client.Set(ctx, c.key(userID), username, userCacheTTL).Err()
}

func (c *UserCache) key(userID string) string {
	return "user:" + userID
}
