// ABOUTME: Redis slot store using go-redis client
// ABOUTME: Slots are plain string keys with no expiration

package redis

import (
	"context"
	"errors"
	"time"

	coreerrors "gistfm-api/core/errors"
	"gistfm-api/core/interfaces"
	"gistfm-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Store implements the Store interface using Redis
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store and verifies the connection
func NewStore(cfg config.RedisConfig) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, coreerrors.WrapError(err, "failed to connect to redis")
	}

	return &Store{client: client}, nil
}

// NewStoreWithClient wraps an existing client
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves a value from Redis
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrKeyNotFound
		}
		return nil, coreerrors.WrapError(err, "failed to get slot "+key)
	}

	return val, nil
}

// Set stores a value in Redis without expiration
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return coreerrors.WrapError(s.client.Set(ctx, key, value, 0).Err(), "failed to set slot "+key)
}

// Delete removes a key from Redis; deleting an absent key is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	return coreerrors.WrapError(s.client.Del(ctx, key).Err(), "failed to delete slot "+key)
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
