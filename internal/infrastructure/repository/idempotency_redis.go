package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
)

type redisIdempotencyRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisIdempotencyRepository stores idempotency keys in redis with a TTL,
// so replays survive a restart and expiry is handled by the server
func NewRedisIdempotencyRepository(client *redis.Client, prefix string) domainRepo.IdempotencyRepository {
	return &redisIdempotencyRepository{client: client, prefix: prefix + "idempotency:"}
}

func (r *redisIdempotencyRepository) key(key, username string) string {
	return r.prefix + username + ":" + key
}

func (r *redisIdempotencyRepository) GetByKey(ctx context.Context, key string, username string) (*entity.IdempotencyKey, error) {
	raw, err := r.client.Get(ctx, r.key(key, username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ikey entity.IdempotencyKey
	if err := json.Unmarshal(raw, &ikey); err != nil {
		return nil, err
	}
	return &ikey, nil
}

func (r *redisIdempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	data, err := json.Marshal(ikey)
	if err != nil {
		return err
	}
	ttl := time.Until(ikey.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(ikey.Key, ikey.Username), data, ttl).Err()
}

// DeleteExpired is a no-op; redis expires keys itself
func (r *redisIdempotencyRepository) DeleteExpired(context.Context) error {
	return nil
}
