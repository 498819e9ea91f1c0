package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := NewPostgresStore(db)
	store.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return store, mock
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := setupPostgresStore(t)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow("settings", `{"gstEnabled":true}`, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "storage_blobs" WHERE key = \$1`).
		WillReturnRows(rows)

	v, ok, err := store.Get(context.Background(), "settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"gstEnabled":true}`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissing(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`SELECT \* FROM "storage_blobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, ok, err := store.Get(context.Background(), "bills")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresStore_GetError(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`SELECT \* FROM "storage_blobs"`).
		WillReturnError(errors.New("connection refused"))

	_, _, err := store.Get(context.Background(), "bills")
	assert.Error(t, err)
}

func TestPostgresStore_SetUpserts(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectExec(`INSERT INTO "storage_blobs" .+ ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "bills", `[]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}
