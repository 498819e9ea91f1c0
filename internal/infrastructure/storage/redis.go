package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
)

// RedisStore keeps blobs as plain redis strings under a key prefix
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

var _ repository.BlobStore = (*RedisStore)(nil)

func (s *RedisStore) key(key string) string {
	return s.Prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.Client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.Client.Set(ctx, s.key(key), value, 0).Err()
}
