package config

import (
	"context"
	"time"

	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/storage"
)

// OpenBackend constructs the persistence backend named by the configuration.
// The caller owns the returned backend and must Close it.
func OpenBackend(ctx context.Context, cfg StorageConfig) (storage.Backend, error) {
	switch cfg.Backend {
	case BackendMemory:
		return storage.NewMemoryBackend(), nil
	case BackendFile:
		return storage.NewFileBackend(cfg.File.Dir)
	case BackendRedis:
		return storage.NewRedisBackend(ctx, storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      time.Duration(cfg.Redis.TTLSeconds) * time.Second,
		})
	case BackendMongo:
		return storage.NewMongoBackend(ctx, storage.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend: %s", cfg.Backend)
	}
}
