package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_Memory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewIdempotencyRepository().(*idempotencyRepository)
	repo.now = fixedClock(now)

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:          "abc",
		Username:     "cashier",
		ResponseCode: 201,
		ExpiresAt:    now.Add(time.Hour),
	}))

	got, err := repo.GetByKey(ctx, "abc", "cashier")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 201, got.ResponseCode)

	other, err := repo.GetByKey(ctx, "abc", "admin")
	require.NoError(t, err)
	assert.Nil(t, other)

	repo.now = fixedClock(now.Add(2 * time.Hour))
	expired, err := repo.GetByKey(ctx, "abc", "cashier")
	require.NoError(t, err)
	assert.Nil(t, expired)

	require.NoError(t, repo.DeleteExpired(ctx))
	assert.Empty(t, repo.keys)
}

func TestIdempotencyRepository_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRedisIdempotencyRepository(client, "snacksbunk:")
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:          "abc",
		Username:     "cashier",
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	got, err := repo.GetByKey(ctx, "abc", "cashier")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"success":true}`, got.ResponseBody)
	assert.True(t, mr.Exists("snacksbunk:idempotency:cashier:abc"))

	mr.FastForward(2 * time.Hour)
	gone, err := repo.GetByKey(ctx, "abc", "cashier")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
