// Package postgres implements kvstore.Store on PostgreSQL. Each collection
// key becomes one row in the kv_documents table with a JSONB payload.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

// DB is the subset of pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements kvstore.Store using PostgreSQL.
type Store struct {
	db DB
}

// NewStore creates a new Store.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Save stores the payload under the key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO kv_documents (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		key, data,
	)

	return err
}

// Load retrieves the payload stored under the key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT payload FROM kv_documents WHERE key = $1`,
		key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}

		return nil, err
	}

	return data, nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_documents WHERE key = $1`, key)
	return err
}

// ClearAll removes every stored document.
func (s *Store) ClearAll(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_documents`)
	return err
}
