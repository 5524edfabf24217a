package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artisan-market/utils"

	"github.com/go-redis/redis/v8"
)

const nameKeyPrefix = "display-name:"

// NewRedisClient dials addr and verifies the connection
func NewRedisClient(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       0,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis at %s: %w", addr, err)
	}

	utils.Info("connected to redis for display-name caching", map[string]any{"addr": addr})
	return client, nil
}

// NameCache keeps resolved display names for a bounded time.
// Redis failures are logged and reported as misses.
type NameCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNameCache(client *redis.Client, ttl time.Duration) *NameCache {
	return &NameCache{client: client, ttl: ttl}
}

// Get returns the cached name for key
func (c *NameCache) Get(ctx context.Context, key string) (string, bool) {
	name, err := c.client.Get(ctx, nameKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		utils.Warn("cache: get display name failed", map[string]any{"key": key, "error": err.Error()})
		return "", false
	}
	return name, true
}

// Set stores name under key
func (c *NameCache) Set(ctx context.Context, key, name string) {
	if err := c.client.Set(ctx, nameKeyPrefix+key, name, c.ttl).Err(); err != nil {
		utils.Warn("cache: set display name failed", map[string]any{"key": key, "error": err.Error()})
	}
}

// Invalidate drops key, e.g. after a profile change
func (c *NameCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, nameKeyPrefix+key).Err(); err != nil {
		utils.Warn("cache: invalidate display name failed", map[string]any{"key": key, "error": err.Error()})
	}
}
