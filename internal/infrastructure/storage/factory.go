package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/snacksbunk-pos/internal/config"
	"github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/internal/infrastructure/database"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Open builds the blob store selected by STORAGE_DRIVER. The returned
// close function releases the driver's connections.
func Open(ctx context.Context, cfg *config.Config) (repository.BlobStore, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(cfg.Storage.Driver) {
	case "memory":
		log.Println("[storage] using in-memory blob store, data will not survive a restart")
		return NewMemoryStore(), noop, nil

	case "", "file":
		store, err := NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[storage] using file blob store at %s", cfg.Storage.FilePath)
		return store, noop, nil

	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db), sqlDB.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Printf("[storage] using redis blob store at %s", cfg.Redis.Addr)
		return NewRedisStore(client, cfg.Redis.KeyPrefix), client.Close, nil

	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		log.Printf("[storage] using mongo blob store %s.%s", cfg.Mongo.Database, cfg.Mongo.Collection)
		return NewMongoStore(coll), func() error {
			return client.Disconnect(context.Background())
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
