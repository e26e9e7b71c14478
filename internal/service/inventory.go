package service

import (
	"context"
	"strings"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
)

type inventoryService struct {
	state *State
}

func NewInventoryService(state *State) InventoryService {
	return &inventoryService{state: state}
}

func (s *inventoryService) AddItem(ctx context.Context, id domain.ItemID, name string, quantity int) (*domain.EquipmentItem, error) {
	id = domain.ItemID(strings.TrimSpace(string(id)))
	name = strings.TrimSpace(name)
	if id == "" {
		return nil, errs.Validation("id", "item code is required")
	}
	if name == "" {
		return nil, errs.Validation("name", "item name is required")
	}
	if quantity < 0 {
		quantity = 0
	}

	item := domain.EquipmentItem{ID: id, Name: name, TotalQuantity: quantity}
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		if domain.FindItem(snap.Items, id) >= 0 {
			return false, errs.Duplicate("item %s already exists", id)
		}
		snap.Items = append(snap.Items, item)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Equipment item added", "item_id", id, "quantity", quantity)
	return &item, nil
}

// AdjustQuantity changes the owned quantity by delta, never below zero
func (s *inventoryService) AdjustQuantity(ctx context.Context, id domain.ItemID, delta int) (*domain.EquipmentItem, error) {
	var updated domain.EquipmentItem
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		i := domain.FindItem(snap.Items, id)
		if i < 0 {
			return false, errs.NotFound("item %s not found", id)
		}
		qty := snap.Items[i].TotalQuantity + delta
		if qty < 0 {
			qty = 0
		}
		changed := qty != snap.Items[i].TotalQuantity
		snap.Items[i].TotalQuantity = qty
		updated = snap.Items[i]
		return changed, nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Equipment quantity adjusted", "item_id", id, "delta", delta, "quantity", updated.TotalQuantity)
	return &updated, nil
}

// DeleteItem removes the item from the catalogue. Rentals that reference it
// stay in the ledger and display the raw item id.
func (s *inventoryService) DeleteItem(ctx context.Context, id domain.ItemID) error {
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		i := domain.FindItem(snap.Items, id)
		if i < 0 {
			return false, errs.NotFound("item %s not found", id)
		}
		snap.Items = append(snap.Items[:i], snap.Items[i+1:]...)
		return true, nil
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Equipment item deleted", "item_id", id)
	return nil
}

func (s *inventoryService) ListItems(ctx context.Context) []domain.EquipmentItem {
	return s.state.Snapshot().Items
}
