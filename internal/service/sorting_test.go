package service_test

import (
	"testing"
	"time"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKeys(t *testing.T) {
	t.Run("Stock", func(t *testing.T) {
		key, err := service.ParseStockSort("")
		require.NoError(t, err)
		assert.Equal(t, service.StockSortDefault, key)

		key, err = service.ParseStockSort(" AVAIL_DESC ")
		require.NoError(t, err)
		assert.Equal(t, service.StockSortAvailableDesc, key)

		_, err = service.ParseStockSort("price")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "sort", errs.FieldOf(err))
	})

	t.Run("Rentals", func(t *testing.T) {
		key, err := service.ParseRentalSort("", service.RentalSortCreatedDesc)
		require.NoError(t, err)
		assert.Equal(t, service.RentalSortCreatedDesc, key)

		key, err = service.ParseRentalSort("due_asc", service.RentalSortCreatedDesc)
		require.NoError(t, err)
		assert.Equal(t, service.RentalSortDueAsc, key)

		_, err = service.ParseRentalSort("region", service.RentalSortDefault)
		assert.Equal(t, "sort", errs.FieldOf(err))
	})
}

func TestSortStock(t *testing.T) {
	stock := func() []service.Availability {
		return []service.Availability{
			{Item: domain.EquipmentItem{ID: "C", Name: "Crutches", TotalQuantity: 10}, Available: 4},
			{Item: domain.EquipmentItem{ID: "B", Name: "Bed", TotalQuantity: 2}, Available: 4},
			{Item: domain.EquipmentItem{ID: "W", Name: "Wheelchair", TotalQuantity: 6}, Available: 6},
		}
	}
	order := func(s []service.Availability) []domain.ItemID {
		out := make([]domain.ItemID, 0, len(s))
		for _, a := range s {
			out = append(out, a.Item.ID)
		}
		return out
	}

	tests := []struct {
		key  service.StockSort
		want []domain.ItemID
	}{
		{service.StockSortDefault, []domain.ItemID{"C", "B", "W"}},
		{service.StockSortAvailableDesc, []domain.ItemID{"W", "B", "C"}},
		{service.StockSortQuantityDesc, []domain.ItemID{"C", "W", "B"}},
		{service.StockSortNameAsc, []domain.ItemID{"B", "C", "W"}},
		{service.StockSortNameDesc, []domain.ItemID{"W", "C", "B"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			s := stock()
			service.SortStock(s, tt.key)
			assert.Equal(t, tt.want, order(s))
		})
	}
}

func TestSortRentals(t *testing.T) {
	view := func(id domain.RentalID, name string, due int, created time.Duration) service.RentalView {
		r := activeRental(id, "WCHAIR-001", 1, daysFromNow(0))
		r.RenterName = name
		r.DueDate = daysFromNow(due)
		r.CreatedAt = testNow.Add(created)
		return service.RentalView{RentalRecord: r}
	}
	views := func() []service.RentalView {
		return []service.RentalView{
			view("1", "Park", 20, time.Minute),
			view("2", "Choi", 5, 3*time.Minute),
			view("3", "Lee", 40, 2*time.Minute),
		}
	}

	tests := []struct {
		key  service.RentalSort
		want []domain.RentalID
	}{
		{service.RentalSortDefault, []domain.RentalID{"1", "2", "3"}},
		{service.RentalSortDueAsc, []domain.RentalID{"2", "1", "3"}},
		{service.RentalSortDueDesc, []domain.RentalID{"3", "1", "2"}},
		{service.RentalSortNameAsc, []domain.RentalID{"2", "3", "1"}},
		{service.RentalSortNameDesc, []domain.RentalID{"1", "3", "2"}},
		{service.RentalSortCreatedAsc, []domain.RentalID{"1", "3", "2"}},
		{service.RentalSortCreatedDesc, []domain.RentalID{"2", "3", "1"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			v := views()
			service.SortRentals(v, tt.key)
			got := make([]domain.RentalID, 0, len(v))
			for _, r := range v {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
