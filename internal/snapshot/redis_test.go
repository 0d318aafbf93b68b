package snapshot

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	t.Cleanup(func() { _ = store.Close() })
	return mr, store
}

func TestRedisStore_LoadMissing(t *testing.T) {
	_, store := newTestRedis(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	mr, store := newTestRedis(t)

	b := seedBoard()
	require.NoError(t, store.Save(ctx, b))

	raw, err := mr.Get("tablero:" + Key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"columnOrder"`)
	assert.Zero(t, mr.TTL("tablero:"+Key), "snapshot must not expire")

	got, err := LoadOrSeed(ctx, store, nil)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr, store := newTestRedis(t)
	mr.Close()

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDialRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := DialRedis(context.Background(), mr.Addr(), "custom")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Save(context.Background(), seedBoard()))
	assert.True(t, mr.Exists("custom"))
}
