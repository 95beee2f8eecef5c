// Package kvstore defines the key-addressed persistence substrate used by the
// collection repositories. Each key holds one serialized collection; a write
// always replaces the whole value.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports a key with no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence substrate contract.
type Store interface {
	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
	// Load returns the value stored under key, or ErrKeyNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Remove deletes the value stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error
	// ClearAll deletes every value held by the store.
	ClearAll(ctx context.Context) error
}
