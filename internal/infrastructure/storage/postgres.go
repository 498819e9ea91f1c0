package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore keeps blobs as rows of the storage_blobs table
type PostgresStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgresStore creates a blob store on an open gorm connection
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

var _ repository.BlobStore = (*PostgresStore)(nil)

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var blob entity.StorageBlob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob.Value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	blob := entity.StorageBlob{Key: key, Value: value, UpdatedAt: s.now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&blob).Error
}
