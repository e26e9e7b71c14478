package domain

import (
	"testing"
	"time"

	"mobility-rental-backend/internal/utils"

	"github.com/stretchr/testify/assert"
)

func newRecord(start, due string) RentalRecord {
	return RentalRecord{
		ID:        "r-1",
		ItemID:    "WCHAIR-001",
		Quantity:  1,
		StartDate: utils.MustParseDate(start),
		DueDate:   utils.MustParseDate(due),
		Status:    RentalStatusActive,
	}
}

func TestRentalRecord_IsActiveAt(t *testing.T) {
	r := newRecord("2025-03-10", "2025-04-10")

	t.Run("Before start", func(t *testing.T) {
		assert.False(t, r.IsActiveAt(time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("On start date", func(t *testing.T) {
		assert.True(t, r.IsActiveAt(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("On due date afternoon", func(t *testing.T) {
		assert.True(t, r.IsActiveAt(time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC)))
	})

	t.Run("Overdue still reserves stock", func(t *testing.T) {
		at := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		assert.True(t, r.IsActiveAt(at))
		assert.True(t, r.IsOverdueAt(at))
		assert.False(t, r.CoversDate(utils.DateOf(at)))
	})

	t.Run("Returned never active", func(t *testing.T) {
		returned := r.Clone()
		returned.MarkReturned(time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC))
		assert.False(t, returned.IsActiveAt(time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)))
		assert.False(t, returned.IsOverdueAt(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestRentalRecord_MarkReturned(t *testing.T) {
	r := newRecord("2025-03-10", "2025-04-10")
	at := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

	r.MarkReturned(at)

	assert.Equal(t, RentalStatusReturned, r.Status)
	assert.NotNil(t, r.ReturnedAt)
	assert.True(t, r.ReturnedAt.Equal(at))
	assert.Equal(t, 1, r.Quantity)
	assert.Equal(t, "2025-04-10", r.DueDate.String())
}

func TestRentalRecord_Clone(t *testing.T) {
	r := newRecord("2025-03-10", "2025-04-10")
	r.MarkReturned(time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC))

	c := r.Clone()
	*c.ReturnedAt = c.ReturnedAt.Add(time.Hour)

	assert.NotEqual(t, *r.ReturnedAt, *c.ReturnedAt)
}

func TestItemName(t *testing.T) {
	items := DefaultCatalogue()

	assert.Equal(t, "Crutches", ItemName(items, "CRUTCH-101"))
	assert.Equal(t, "WCHAIR-999", ItemName(items, "WCHAIR-999"))
	assert.Equal(t, -1, FindItem(items, "missing"))
}

func TestEnums(t *testing.T) {
	assert.True(t, EligibilityPriority.IsValid())
	assert.False(t, EligibilityClass("VIP").IsValid())
	assert.True(t, RentalStatusReturned.IsValid())
	assert.False(t, RentalStatus("LOST").IsValid())
}
