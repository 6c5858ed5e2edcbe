package cached

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jaipal-12/villageconnect/internal/adapter/cache"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv"
)

// Store implements kv.Store with caching support. It wraps a durable store
// and a cache implementation using the cache-aside pattern: reads prefer
// the cache, writes go to the durable store and invalidate.
type Store struct {
	inner kv.Store
	cache cache.RecordCache
	log   *zap.Logger
	group singleflight.Group
}

// NewStore wraps inner with a read-through cache.
func NewStore(inner kv.Store, recordCache cache.RecordCache, log *zap.Logger) *Store {
	return &Store{
		inner: inner,
		cache: recordCache,
		log:   log,
	}
}

// Get returns the value for key, consulting the cache first. A cache error
// falls back to the durable store; concurrent misses for the same key are
// collapsed into one durable read.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if val, found, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("cache get error, falling back to durable store", zap.String("key", key), zap.Error(err))
	} else if found {
		return val, true, nil
	}

	type result struct {
		value string
		found bool
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Double-check cache in case another request populated it while
		// we were waiting
		if val, found, err := s.cache.Get(ctx, key); err == nil && found {
			return result{value: val, found: true}, nil
		}

		val, found, err := s.inner.Get(ctx, key)
		if err != nil {
			return result{}, err
		}

		if found {
			if err := s.cache.Set(ctx, key, val); err != nil {
				s.log.Warn("failed to cache record", zap.String("key", key), zap.Error(err))
			}
		}

		return result{value: val, found: found}, nil
	})
	if err != nil {
		return "", false, err
	}

	r := v.(result)
	return r.value, r.found, nil
}

// Set writes through to the durable store and invalidates the cache.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.inner.Set(ctx, key, value); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn("failed to invalidate cache after set", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// Remove deletes from the durable store and invalidates the cache.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.inner.Remove(ctx, key); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn("failed to invalidate cache after remove", zap.String("key", key), zap.Error(err))
	}
	return nil
}
