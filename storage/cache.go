package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Cache wraps a key-value backend with Redis-backed caching. Reads are
// served from Redis when possible; writes go through to the backend and
// refresh the cached value, since every write is a full overwrite.
type Cache struct {
	base  backend
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching wrapper using the provided Redis client and
// TTL. A nil client degrades to pass-through.
func NewCache(base backend, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("storage.NewCache: base storage is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{base: base, redis: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	if value, ok := c.loadFromCache(ctx, key); ok {
		return value, true, nil
	}

	value, ok, err := c.base.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	c.store(ctx, key, value)
	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key, value string) error {
	if err := c.base.Set(ctx, key, value); err != nil {
		return err
	}

	c.store(ctx, key, value)
	return nil
}

func (c *Cache) loadFromCache(ctx context.Context, key string) (string, bool) {
	if c.redis == nil {
		return "", false
	}
	value, err := c.redis.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if err != redis.Nil {
			// On redis errors fall back to the backing storage without failing.
			_ = c.redis.Del(ctx, cacheKey(key)).Err()
		}
		return "", false
	}
	return value, true
}

func (c *Cache) store(ctx context.Context, key, value string) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(key), value, c.ttl).Err()
}

func cacheKey(key string) string {
	return "kv:" + key
}
