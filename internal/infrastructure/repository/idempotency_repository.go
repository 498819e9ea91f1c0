package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
)

type idempotencyRepository struct {
	mu   sync.Mutex
	keys map[string]entity.IdempotencyKey
	now  func() time.Time
}

// NewIdempotencyRepository creates a new in-memory idempotency repository
func NewIdempotencyRepository() domainRepo.IdempotencyRepository {
	return &idempotencyRepository{
		keys: make(map[string]entity.IdempotencyKey),
		now:  time.Now,
	}
}

func idempotencyMapKey(key, username string) string {
	return username + "\x00" + key
}

func (r *idempotencyRepository) GetByKey(_ context.Context, key string, username string) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ikey, ok := r.keys[idempotencyMapKey(key, username)]
	if !ok || ikey.IsExpired(r.now()) {
		return nil, nil
	}
	return &ikey, nil
}

func (r *idempotencyRepository) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[idempotencyMapKey(ikey.Key, ikey.Username)] = *ikey
	return nil
}

func (r *idempotencyRepository) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, ikey := range r.keys {
		if ikey.IsExpired(now) {
			delete(r.keys, k)
		}
	}
	return nil
}
