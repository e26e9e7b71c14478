package storage

import (
	"context"
	"database/sql"

	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
	"mobility-rental-backend/internal/repository/memory"
	"mobility-rental-backend/internal/repository/postgres"
)

// Backend types
const (
	TypeMemory   = "memory"
	TypeFile     = "file"
	TypePostgres = "postgres"
)

// Config holds storage configuration
type Config struct {
	Type  string // "memory", "file" or "postgres"
	Dir   string // State directory for file storage
	DSN   string // Connection string for postgres storage
	Table string // Blob table for postgres storage
}

// Open builds the KeyValueStore selected by cfg. The returned close func
// releases backend resources and is never nil.
func Open(ctx context.Context, cfg Config) (repository.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case "", TypeMemory:
		logger.Info("Using in-memory storage (state is lost on exit)")
		return memory.NewKeyValueStore(), noop, nil

	case TypeFile:
		logger.Info("Using file storage", "dir", cfg.Dir)
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case TypePostgres:
		logger.Info("Using postgres storage", "table", cfg.Table)
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, noop, errs.Wrap(err, "failed to connect to database")
		}
		if err := postgres.EnsureSchema(ctx, db, cfg.Table); err != nil {
			db.Close()
			return nil, noop, errs.Wrap(err, "failed to prepare schema")
		}
		return postgres.NewKeyValueStore(db, cfg.Table), closeDB(db), nil

	default:
		return nil, noop, errs.Newf("storage type '%s' not supported", cfg.Type)
	}
}

func closeDB(db *sql.DB) func() error {
	return db.Close
}
