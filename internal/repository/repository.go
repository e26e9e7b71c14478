package repository

import (
	"context"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for an absent key
var ErrKeyNotFound = errs.New("key not found")

// KeyValueStore holds opaque blobs by key. PutAll writes every entry or none.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	PutAll(ctx context.Context, entries map[string][]byte) error
}

// StateStore loads and saves the whole inventory and ledger at once
type StateStore interface {
	Load(ctx context.Context) ([]domain.EquipmentItem, []domain.RentalRecord, error)
	Save(ctx context.Context, items []domain.EquipmentItem, rentals []domain.RentalRecord) error
}
