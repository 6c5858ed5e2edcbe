package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RecordCache defines the interface for caching durable records.
type RecordCache interface {
	// Get retrieves a record from cache by key.
	// Returns found=false on a cache miss.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores a record in cache with the configured TTL.
	Set(ctx context.Context, key, value string) error

	// Delete removes records from cache by key.
	Delete(ctx context.Context, keys ...string) error
}

// RedisRecordCache implements RecordCache using Redis as the backing store.
type RedisRecordCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisRecordCache creates a new Redis-backed record cache.
func NewRedisRecordCache(client *redis.Client, ttl time.Duration, log *zap.Logger) RecordCache {
	return &RedisRecordCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cacheKey generates a Redis key for a record key. The prefix keeps cache
// entries apart from durable records when both live in the same Redis.
func (c *RedisRecordCache) cacheKey(key string) string {
	return fmt.Sprintf("villageconnect:cache:%s", key)
}

// Get retrieves a record from Redis cache.
func (c *RedisRecordCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.cacheKey(key)).Result()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.String("key", key))
		return "", false, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.String("key", key), zap.Error(err))
		return "", false, err
	}

	c.log.Debug("cache hit", zap.String("key", key))
	return val, true, nil
}

// Set stores a record in Redis cache with TTL.
func (c *RedisRecordCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, c.cacheKey(key), value, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.String("key", key), zap.Error(err))
		return err
	}

	c.log.Debug("cached record", zap.String("key", key), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes records from Redis cache.
func (c *RedisRecordCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = c.cacheKey(key)
	}

	if err := c.client.Del(ctx, cacheKeys...).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int("count", len(keys)), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Int("count", len(keys)))
	return nil
}
