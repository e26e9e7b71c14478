package repository

import (
	"context"
	"encoding/json"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
)

const (
	KeyItems   = "items"
	KeyRentals = "rentals"
)

// CorruptKey is where an undecodable blob stored under key is set aside
// before the key is reset.
func CorruptKey(key string) string {
	return key + ".corrupt"
}

// JSONStateStore keeps the inventory and the ledger as two JSON arrays in a KeyValueStore
type JSONStateStore struct {
	kv   KeyValueStore
	seed []domain.EquipmentItem
}

// NewJSONStateStore returns a StateStore over kv; seed is the catalogue used
// when kv holds no inventory yet.
func NewJSONStateStore(kv KeyValueStore, seed []domain.EquipmentItem) *JSONStateStore {
	return &JSONStateStore{kv: kv, seed: domain.CloneItems(seed)}
}

var _ StateStore = (*JSONStateStore)(nil)

func (s *JSONStateStore) Load(ctx context.Context) ([]domain.EquipmentItem, []domain.RentalRecord, error) {
	items, err := decodeList(ctx, s.kv, KeyItems, func() []domain.EquipmentItem {
		return domain.CloneItems(s.seed)
	})
	if err != nil {
		return nil, nil, err
	}

	rentals, err := decodeList(ctx, s.kv, KeyRentals, func() []domain.RentalRecord {
		return []domain.RentalRecord{}
	})
	if err != nil {
		return nil, nil, err
	}

	return items, rentals, nil
}

// decodeList reads key as a JSON array. A missing key yields initial(). A
// blob that no longer decodes is copied to CorruptKey(key) first, and the
// load fails if that copy cannot be written.
func decodeList[T any](ctx context.Context, kv KeyValueStore, key string, initial func() []T) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if errs.Is(err, ErrKeyNotFound) {
		return initial(), nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read "+key)
	}

	var decoded []T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		backup := CorruptKey(key)
		if perr := kv.PutAll(ctx, map[string][]byte{backup: raw}); perr != nil {
			return nil, errs.Wrapf(perr, "failed to back up undecodable %s", key)
		}
		logger.WarnContext(ctx, "Undecodable stored state set aside", "key", key, "backup", backup, "error", err)
		return initial(), nil
	}
	if decoded == nil {
		decoded = []T{}
	}
	return decoded, nil
}

func (s *JSONStateStore) Save(ctx context.Context, items []domain.EquipmentItem, rentals []domain.RentalRecord) error {
	if items == nil {
		items = []domain.EquipmentItem{}
	}
	if rentals == nil {
		rentals = []domain.RentalRecord{}
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return errs.Wrap(err, "failed to encode items")
	}
	rawRentals, err := json.Marshal(rentals)
	if err != nil {
		return errs.Wrap(err, "failed to encode rentals")
	}

	if err := s.kv.PutAll(ctx, map[string][]byte{KeyItems: rawItems, KeyRentals: rawRentals}); err != nil {
		return errs.Wrap(err, "failed to write state")
	}
	return nil
}
