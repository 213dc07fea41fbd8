package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultBadgeTTL = 5 * time.Minute

// BadgeCache caches per-user unseen-notification counts under
// badge:<userID>. Cache-aside: the emitter and the mark-seen endpoints
// invalidate, the count endpoint repopulates on miss. Mongo stays the
// source of truth; a cold or lost key only costs one extra count query.
type BadgeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBadgeCache creates a BadgeCache. A non-positive ttl falls back to 5m.
func NewBadgeCache(client *redis.Client, ttl time.Duration) *BadgeCache {
	if ttl <= 0 {
		ttl = defaultBadgeTTL
	}
	return &BadgeCache{client: client, ttl: ttl}
}

func badgeKey(userID string) string {
	return "badge:" + userID
}

// Get returns the cached count and whether the key was present.
func (c *BadgeCache) Get(ctx context.Context, userID string) (int64, bool, error) {
	count, err := c.client.Get(ctx, badgeKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("badge get: %w", err)
	}
	return count, true, nil
}

// Set stores the count with the configured TTL.
func (c *BadgeCache) Set(ctx context.Context, userID string, count int64) error {
	if err := c.client.Set(ctx, badgeKey(userID), count, c.ttl).Err(); err != nil {
		return fmt.Errorf("badge set: %w", err)
	}
	return nil
}

// Invalidate drops the cached count so the next read recomputes it.
func (c *BadgeCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, badgeKey(userID)).Err(); err != nil {
		return fmt.Errorf("badge invalidate: %w", err)
	}
	return nil
}
