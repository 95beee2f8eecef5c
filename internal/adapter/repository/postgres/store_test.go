package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestStoreSave(t *testing.T) {
	pool := newMockPool(t)
	payload := []byte(`[{"id":"a"}]`)
	pool.ExpectExec("INSERT INTO kv_documents").
		WithArgs("accounts", payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewStore(pool)
	if err := store.Save(context.Background(), "accounts", payload); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	assertExpectations(t, pool)
}

func TestStoreLoad(t *testing.T) {
	pool := newMockPool(t)
	payload := []byte(`[{"id":"a"}]`)
	pool.ExpectQuery("SELECT payload FROM kv_documents").
		WithArgs("accounts").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow(payload))

	store := NewStore(pool)
	data, err := store.Load(context.Background(), "accounts")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("unexpected payload: %s", data)
	}

	assertExpectations(t, pool)
}

func TestStoreLoadMissing(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("SELECT payload FROM kv_documents").
		WithArgs("nothing").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}))

	store := NewStore(pool)
	if _, err := store.Load(context.Background(), "nothing"); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestStoreRemove(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec("DELETE FROM kv_documents WHERE key").
		WithArgs("expenses").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	store := NewStore(pool)
	if err := store.Remove(context.Background(), "expenses"); err != nil {
		t.Errorf("expected absent key to be a no-op, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestStoreClearAll(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec("DELETE FROM kv_documents").
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	store := NewStore(pool)
	if err := store.ClearAll(context.Background()); err != nil {
		t.Fatalf("clear all failed: %v", err)
	}

	assertExpectations(t, pool)
}
