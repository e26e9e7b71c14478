package service

import (
	"context"
	"sync"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
)

// Snapshot is a point-in-time copy of the inventory and the ledger
type Snapshot struct {
	Items   []domain.EquipmentItem
	Rentals []domain.RentalRecord
}

// State owns the in-memory inventory and ledger. Mutations are serialized
// and persisted before they become visible; reads get copies.
type State struct {
	mu      sync.RWMutex
	store   repository.StateStore
	items   []domain.EquipmentItem
	rentals []domain.RentalRecord
}

// OpenState loads the current inventory and ledger from store
func OpenState(ctx context.Context, store repository.StateStore) (*State, error) {
	items, rentals, err := store.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load state")
	}
	logger.InfoContext(ctx, "State loaded", "items", len(items), "rentals", len(rentals))

	return &State{
		store:   store,
		items:   items,
		rentals: rentals,
	}, nil
}

// Snapshot returns a deep copy of the current state
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Items:   domain.CloneItems(s.items),
		Rentals: domain.CloneRentals(s.rentals),
	}
}

// mutation edits a working copy in place; changed=false skips the write
type mutation func(snap *Snapshot) (changed bool, err error)

// mutate applies fn to a copy of the state, persists the result and only
// then swaps it in. On any error the previous state stays in place.
func (s *State) mutate(ctx context.Context, fn mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := Snapshot{
		Items:   domain.CloneItems(s.items),
		Rentals: domain.CloneRentals(s.rentals),
	}

	changed, err := fn(&working)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := s.store.Save(ctx, working.Items, working.Rentals); err != nil {
		return errs.Wrap(err, "failed to save state")
	}

	s.items = working.Items
	s.rentals = working.Rentals
	return nil
}
