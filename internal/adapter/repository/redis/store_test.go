package redis

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"

	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, "fintrack"), mr
}

func TestStoreSaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "accounts", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := store.Load(ctx, "accounts")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Errorf("unexpected payload: %s", data)
	}

	// replace
	if err := store.Save(ctx, "accounts", []byte(`[]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err = store.Load(ctx, "accounts")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[]` {
		t.Errorf("expected replacement, got %s", data)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Load(context.Background(), "nothing"); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStoreRemove(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "expenses", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Remove(ctx, "expenses"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := store.Load(ctx, "expenses"); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after remove, got %v", err)
	}

	// absent key is not an error
	if err := store.Remove(ctx, "expenses"); err != nil {
		t.Errorf("expected idempotent remove, got %v", err)
	}
}

func TestStoreClearAll(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"accounts", "expenses", "deposits", "adjustments", "settings"} {
		if err := store.Save(ctx, key, []byte(`[]`)); err != nil {
			t.Fatal(err)
		}
	}
	// a key outside the prefix must survive
	if err := mr.Set("other-app:state", "keep"); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("clear all failed: %v", err)
	}

	for _, key := range []string{"accounts", "expenses", "deposits", "adjustments", "settings"} {
		if _, err := store.Load(ctx, key); !errors.Is(err, kvstore.ErrKeyNotFound) {
			t.Errorf("expected %s cleared, got %v", key, err)
		}
	}
	if !mr.Exists("other-app:state") {
		t.Error("expected foreign key to survive")
	}
}
