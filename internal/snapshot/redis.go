package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/tablero/internal/models"
)

// RedisStore keeps the snapshot under a single redis key, without expiry
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps a redis client. An empty key uses "tablero:" + Key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if client == nil {
		panic("snapshot.NewRedisStore: client is nil")
	}
	if key == "" {
		key = "tablero:" + Key
	}
	return &RedisStore{client: client, key: key}
}

// DialRedis connects to addr (host:port or a redis:// URL) and checks the connection
func DialRedis(ctx context.Context, addr, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewRedisStore(client, key), nil
}

// Load fetches the snapshot
func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the snapshot
func (r *RedisStore) Save(ctx context.Context, b models.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying redis client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
