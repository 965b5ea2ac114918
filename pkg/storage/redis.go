package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL expires saved boards after the given duration. Zero keeps boards
	// forever.
	TTL time.Duration
}

// RedisBackend stores each board as one JSON value. Suitable for
// multi-instance deployments where boards are shared across processes.
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBackend connects to redis and verifies the connection.
func NewRedisBackend(ctx context.Context, cfg RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisBackend{client: client, ttl: cfg.TTL}, nil
}

// key namespaces board documents in the keyspace.
func (b *RedisBackend) key(boardID string) string {
	return "gridboard:board:" + boardID
}

// Fetch retrieves the records of a board.
func (b *RedisBackend) Fetch(ctx context.Context, boardID string) ([]Record, error) {
	data, err := b.client.Get(ctx, b.key(boardID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse board document: %w", err)
	}
	return records, nil
}

// Put stores the records of a board.
func (b *RedisBackend) Put(ctx context.Context, boardID string, records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal board document: %w", err)
	}
	if err := b.client.Set(ctx, b.key(boardID), data, b.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a board document.
func (b *RedisBackend) Delete(ctx context.Context, boardID string) error {
	if err := b.client.Del(ctx, b.key(boardID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the redis client.
func (b *RedisBackend) Close() error { return b.client.Close() }

// Ensure RedisBackend implements Backend.
var _ Backend = (*RedisBackend)(nil)
