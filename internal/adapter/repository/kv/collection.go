// Package kv implements the collection repositories over a kvstore.Store.
// Every mutation is a full read-modify-write of one collection, which is the
// persistence unit; there is exactly one writer, so no locking is needed
// beyond what the store itself does.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

// Storage keys, one per collection.
const (
	KeyAccounts    = "accounts"
	KeyExpenses    = "expenses"
	KeyDeposits    = "deposits"
	KeyAdjustments = "adjustments"
	KeySettings    = "settings"
)

// loadList reads and decodes a whole collection. A missing key yields an
// empty collection; an undecodable payload also yields the empty default,
// matching the store contract of "default on absence or parse failure".
func loadList[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	data, err := store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []T{}, nil
		}

		return nil, fmt.Errorf("%w: load %s: %v", domain.ErrStore, key, err)
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable collection")
		return []T{}, nil
	}

	return list, nil
}

// saveList encodes and writes a whole collection.
func saveList[T any](ctx context.Context, store kvstore.Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStore, key, err)
	}

	if err := store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrStore, key, err)
	}

	return nil
}
