package postgres

import (
	"context"
	"database/sql"

	"mobility-rental-backend/internal/logger"

	"github.com/lib/pq"
)

// DefaultTable holds the state blobs unless configured otherwise
const DefaultTable = "kv_store"

// Open connects to Postgres and verifies the connection
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	logger.StoreCall("postgres", "Open")
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.StoreResult("postgres", "Open", err)
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		logger.StoreResult("postgres", "Ping", err)
		return nil, err
	}
	logger.StoreResult("postgres", "Open", nil)
	return db, nil
}

func quoteTable(table string) string {
	if table == "" {
		table = DefaultTable
	}
	return pq.QuoteIdentifier(table)
}
