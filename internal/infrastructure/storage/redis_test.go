package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisStore(client, "snacksbunk:")
}

func TestRedisStore_GetSet(t *testing.T) {
	mr, store := newTestRedis(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, repository.KeyMenuItems)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, repository.KeyMenuItems, `[]`))

	raw, err := mr.Get("snacksbunk:menuItems")
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)

	v, ok, err := store.Get(ctx, repository.KeyMenuItems)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr, store := newTestRedis(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), repository.KeyBills)
	assert.Error(t, err)
}
