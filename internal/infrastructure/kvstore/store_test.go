package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

func stores(t *testing.T) map[string]kvstore.Store {
	t.Helper()

	fileStore, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]kvstore.Store{
		"file":   fileStore,
		"memory": kvstore.NewMemoryStore(),
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, "accounts", []byte(`[{"id":"a1"}]`)))

			got, err := store.Load(ctx, "accounts")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"a1"}]`, string(got))

			// A second save replaces the whole value.
			require.NoError(t, store.Save(ctx, "accounts", []byte(`[]`)))

			got, err = store.Load(ctx, "accounts")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestStore_LoadMissingKey(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load(ctx, "nothing-here")
			assert.True(t, errors.Is(err, kvstore.ErrKeyNotFound), "got %v", err)
		})
	}
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, "deposits", []byte(`[]`)))
			require.NoError(t, store.Remove(ctx, "deposits"))

			// Removing an absent key is a no-op, not an error.
			require.NoError(t, store.Remove(ctx, "deposits"))

			_, err := store.Load(ctx, "deposits")
			assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
		})
	}
}

func TestStore_ClearAll(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, "accounts", []byte(`[]`)))
			require.NoError(t, store.Save(ctx, "expenses", []byte(`[]`)))

			require.NoError(t, store.ClearAll(ctx))

			for _, key := range []string{"accounts", "expenses"} {
				_, err := store.Load(ctx, key)
				assert.ErrorIs(t, err, kvstore.ErrKeyNotFound, "key %s survived ClearAll", key)
			}
		})
	}
}
