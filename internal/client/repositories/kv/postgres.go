package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/astroerik-coder/agrostock/internal/dbx"
)

// PostgresStore keeps values in the kv table of a PostgreSQL database. Update
// takes a transaction-scoped advisory lock on the key, so concurrent writers
// of the same key (including the first insert) are serialised.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	return postgresGet(ctx, s.db, key)
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	return postgresSet(ctx, s.db, key, value)
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return fmt.Errorf("failed to lock kv[%s]: %w", key, err)
		}
		old, err := postgresGet(ctx, tx, key)
		if err != nil {
			return err
		}
		value, err := fn(old)
		if err != nil {
			return err
		}
		return postgresSet(ctx, tx, key, value)
	})
}

func (s *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv WHERE left(key, length($1)) = $1`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv keys: %w", err)
	}
	defer rows.Close()

	keys, err := scanKeys(rows)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func postgresGet(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func postgresSet(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		return ErrNilValue
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
