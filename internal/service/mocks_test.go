package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/repository"
	"mobility-rental-backend/internal/repository/memory"
	"mobility-rental-backend/internal/service"
	"mobility-rental-backend/internal/utils"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testNow is a Monday morning; every fixture is dated relative to it
var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func daysFromNow(n int) utils.Date {
	return utils.DateOf(testNow.AddDate(0, 0, n))
}

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Load(ctx context.Context) ([]domain.EquipmentItem, []domain.RentalRecord, error) {
	args := m.Called(ctx)
	var items []domain.EquipmentItem
	if v := args.Get(0); v != nil {
		items = v.([]domain.EquipmentItem)
	}
	var rentals []domain.RentalRecord
	if v := args.Get(1); v != nil {
		rentals = v.([]domain.RentalRecord)
	}
	return items, rentals, args.Error(2)
}

func (m *MockStateStore) Save(ctx context.Context, items []domain.EquipmentItem, rentals []domain.RentalRecord) error {
	args := m.Called(ctx, items, rentals)
	return args.Error(0)
}

// sequentialIDs hands out r-001, r-002, ...
type sequentialIDs struct {
	next int
}

func (g *sequentialIDs) NewRentalID() domain.RentalID {
	g.next++
	return domain.RentalID(fmt.Sprintf("r-%03d", g.next))
}

// newMemoryState opens a State over an in-memory store pre-filled with items and rentals
func newMemoryState(t *testing.T, items []domain.EquipmentItem, rentals []domain.RentalRecord) *service.State {
	t.Helper()
	ctx := context.Background()

	store := repository.NewJSONStateStore(memory.NewKeyValueStore(), nil)
	require.NoError(t, store.Save(ctx, items, rentals))

	state, err := service.OpenState(ctx, store)
	require.NoError(t, err)
	return state
}

// newMockState opens a State over a MockStateStore that loads items and rentals
func newMockState(t *testing.T, items []domain.EquipmentItem, rentals []domain.RentalRecord) (*service.State, *MockStateStore) {
	t.Helper()
	store := new(MockStateStore)
	store.On("Load", mock.Anything).Return(items, rentals, nil).Once()

	state, err := service.OpenState(context.Background(), store)
	require.NoError(t, err)
	return state, store
}

func wheelchairs(qty int) domain.EquipmentItem {
	return domain.EquipmentItem{ID: "WCHAIR-001", Name: "Manual wheelchair (standard)", TotalQuantity: qty}
}

func crutches(qty int) domain.EquipmentItem {
	return domain.EquipmentItem{ID: "CRUTCH-101", Name: "Crutches", TotalQuantity: qty}
}

func activeRental(id domain.RentalID, item domain.ItemID, qty int, start utils.Date) domain.RentalRecord {
	return domain.RentalRecord{
		ID:          id,
		ItemID:      item,
		RenterName:  "Kim Minji",
		PhoneSuffix: "1234",
		Region:      "Mapo",
		Eligibility: domain.EligibilityStandard,
		Quantity:    qty,
		StartDate:   start,
		DueDate:     utils.AddMonths(start, 1),
		Status:      domain.RentalStatusActive,
		CreatedAt:   start.Time(time.UTC).Add(9 * time.Hour),
	}
}

func returnedRental(id domain.RentalID, item domain.ItemID, qty int, returnedAt time.Time) domain.RentalRecord {
	r := activeRental(id, item, qty, utils.DateOf(returnedAt.AddDate(0, 0, -7)))
	r.MarkReturned(returnedAt)
	return r
}
