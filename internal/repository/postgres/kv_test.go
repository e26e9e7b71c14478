package postgres

import (
	"context"
	"errors"
	"testing"

	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestKeyValueStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := NewKeyValueStore(db, "")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"WCHAIR-001"}]`)
		mock.ExpectQuery(`SELECT value FROM "kv_store" WHERE key = \$1`).
			WithArgs("items").
			WillReturnRows(rows)

		value, err := store.Get(ctx, "items")
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"WCHAIR-001"}]`, string(value))
	})

	t.Run("Missing key", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM "kv_store" WHERE key = \$1`).
			WithArgs("rentals").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := store.Get(ctx, "rentals")
		assert.True(t, errs.Is(err, repository.ErrKeyNotFound))
	})

	t.Run("Query failure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM "kv_store"`).
			WithArgs("items").
			WillReturnError(errors.New("connection reset"))

		_, err := store.Get(ctx, "items")
		assert.Error(t, err)
		assert.False(t, errs.Is(err, repository.ErrKeyNotFound))
		assert.Contains(t, err.Error(), "connection reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueStore_PutAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := NewKeyValueStore(db, "rental_state")
	ctx := context.Background()
	entries := map[string][]byte{"rentals": []byte("[]"), "items": []byte(`[{"id":"CRUTCH-101"}]`)}

	t.Run("Success writes keys in order inside one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "rental_state"`).
			WithArgs("items", `[{"id":"CRUTCH-101"}]`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "rental_state"`).
			WithArgs("rentals", "[]", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.PutAll(ctx, entries))
	})

	t.Run("Failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "rental_state"`).
			WithArgs("items", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := store.PutAll(ctx, entries)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert items")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "kv_store"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, EnsureSchema(context.Background(), db, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}
