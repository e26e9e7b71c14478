package service

import (
	"context"

	"mobility-rental-backend/internal/domain"
)

type InventoryService interface {
	AddItem(ctx context.Context, id domain.ItemID, name string, quantity int) (*domain.EquipmentItem, error)
	AdjustQuantity(ctx context.Context, id domain.ItemID, delta int) (*domain.EquipmentItem, error)
	DeleteItem(ctx context.Context, id domain.ItemID) error
	ListItems(ctx context.Context) []domain.EquipmentItem
}

type StockService interface {
	Stock(ctx context.Context, order StockSort) []Availability
	Summary(ctx context.Context) DashboardSummary
}

type RentalService interface {
	CreateRental(ctx context.Context, input CreateRentalInput) (*domain.RentalRecord, error)
	ReturnRental(ctx context.Context, id domain.RentalID) (*domain.RentalRecord, error)
	DeleteRecord(ctx context.Context, id domain.RentalID) error
	FindForReturn(ctx context.Context, name, phoneSuffix string, itemID domain.ItemID) (*domain.RentalRecord, error)
	QuickReturn(ctx context.Context, name, phoneSuffix string, itemID domain.ItemID) (*domain.RentalRecord, error)
	ListActive(ctx context.Context, order RentalSort) []RentalView
	ListHistory(ctx context.Context, order RentalSort) []RentalView
	ListOverdue(ctx context.Context) []RentalView
	ClearReturnedHistory(ctx context.Context) (int, error)
	PruneHistory(ctx context.Context) (int, error)
}
