package rediskv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// keyPrefix namespaces session records inside a possibly shared Redis
// instance.
const keyPrefix = "villageconnect:"

// Store implements kv.Store on Redis. Records carry no TTL: the session
// store, not the storage layer, decides when a record is removed.
type Store struct {
	client *redis.Client
	log    *zap.Logger
}

// NewStore creates a Redis-backed store.
func NewStore(client *redis.Client, log *zap.Logger) *Store {
	return &Store{client: client, log: log}
}

func (s *Store) redisKey(key string) string {
	return keyPrefix + key
}

// Get returns the value stored under key, or false when absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		s.log.Error("failed to get record from redis", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("failed to get record: %w", err)
	}
	return val, true, nil
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		s.log.Error("failed to set record in redis", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set record: %w", err)
	}
	return nil
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		s.log.Error("failed to remove record from redis", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to remove record: %w", err)
	}
	return nil
}
