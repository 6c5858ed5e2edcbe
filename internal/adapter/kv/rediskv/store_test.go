package rediskv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, zaptest.NewLogger(t)), mr
}

func TestGetAbsent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	val, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Set(ctx, "currentSessionUser", `{"id":"u1"}`))

	val, ok, err := store.Get(ctx, "currentSessionUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"u1"}`, val)

	// Keys are namespaced inside Redis
	assert.True(t, mr.Exists("villageconnect:currentSessionUser"))

	// Records carry no TTL
	assert.Equal(t, int64(0), int64(mr.TTL("villageconnect:currentSessionUser")))
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", val)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Remove(ctx, "k"))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key succeeds
	require.NoError(t, store.Remove(ctx, "k"))
}

func TestGetAfterRedisStops(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	mr.Close()

	_, _, err := store.Get(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get record")
}
