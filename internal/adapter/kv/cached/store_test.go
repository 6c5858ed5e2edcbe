package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jaipal-12/villageconnect/internal/adapter/cache"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv"
)

// countingStore wraps the in-memory store and counts durable reads.
type countingStore struct {
	*kv.MemoryStore
	gets int
}

func (s *countingStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.gets++
	return s.MemoryStore.Get(ctx, key)
}

func newTestStore(t *testing.T) (*Store, *countingStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	inner := &countingStore{MemoryStore: kv.NewMemoryStore()}
	recordCache := cache.NewRedisRecordCache(client, time.Minute, zaptest.NewLogger(t))

	return NewStore(inner, recordCache, zaptest.NewLogger(t)), inner
}

func TestGetPopulatesCache(t *testing.T) {
	ctx := context.Background()
	store, inner := newTestStore(t)

	require.NoError(t, inner.Set(ctx, "k", "v"))

	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, inner.gets)

	// Second read is served from cache
	val, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, inner.gets)
}

func TestGetAbsent(t *testing.T) {
	ctx := context.Background()
	store, inner := newTestStore(t)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	// Absence is not cached
	_, _, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.gets)
}

func TestSetInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	val, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", val)

	require.NoError(t, store.Set(ctx, "k", "v2"))
	val, _, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
}

func TestRemoveInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", "v"))
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Remove(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
