// Package redis implements kvstore.Store on a Redis server. Each collection
// key becomes one Redis string under a configurable prefix.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

// Store implements kvstore.Store using Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a new Store. An empty prefix defaults to "fintrack".
func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "fintrack"
	}

	return &Store{
		client: client,
		prefix: prefix + ":",
	}
}

// Save stores the payload under the key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, s.prefix+key, data, 0).Err()
}

// Load retrieves the payload stored under the key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kvstore.ErrKeyNotFound
		}

		return nil, err
	}

	return data, nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// ClearAll removes every key under the store's prefix.
func (s *Store) ClearAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("scan %s*: %w", s.prefix, err)
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
