package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
)

type keyValueStore struct {
	db    *sql.DB
	table string
}

// NewKeyValueStore stores blobs as rows of table (DefaultTable when empty)
func NewKeyValueStore(db *sql.DB, table string) repository.KeyValueStore {
	return &keyValueStore{db: db, table: quoteTable(table)}
}

// EnsureSchema creates the blob table when it does not exist yet
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_on TIMESTAMPTZ NOT NULL
	)`, quoteTable(table))

	logger.StoreCall("postgres", "EnsureSchema", "table", table)
	_, err := db.ExecContext(ctx, query)
	logger.StoreResult("postgres", "EnsureSchema", err)
	return err
}

func (s *keyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, s.table)
	logger.StoreCall("postgres", "Get", "key", key)

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		logger.StoreResult("postgres", "Get", nil, "key", key, "found", false)
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		logger.StoreResult("postgres", "Get", err, "key", key)
		return nil, errs.Wrap(err, "failed to query "+key)
	}

	logger.StoreResult("postgres", "Get", nil, "key", key, "found", true)
	return []byte(value), nil
}

func (s *keyValueStore) PutAll(ctx context.Context, entries map[string][]byte) error {
	query := fmt.Sprintf(`INSERT INTO %s (key, value, updated_on) VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_on = EXCLUDED.updated_on`, s.table)
	logger.StoreCall("postgres", "PutAll", "keys", len(entries))

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.StoreResult("postgres", "PutAll", err)
		return errs.Wrap(err, "failed to begin transaction")
	}

	now := time.Now().UTC()
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, query, key, string(entries[key]), now); err != nil {
			_ = tx.Rollback()
			logger.StoreResult("postgres", "PutAll", err, "key", key)
			return errs.Wrap(err, "failed to upsert "+key)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.StoreResult("postgres", "PutAll", err)
		return errs.Wrap(err, "failed to commit transaction")
	}

	logger.StoreResult("postgres", "PutAll", nil, "keys", len(keys))
	return nil
}
