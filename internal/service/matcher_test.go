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

func TestFindForReturn(t *testing.T) {
	older := activeRental("r-1", "WCHAIR-001", 1, daysFromNow(-3))
	older.RenterName = "hong"
	newer := activeRental("r-2", "WCHAIR-001", 1, daysFromNow(-1))
	newer.RenterName = "Hong"
	returned := returnedRental("r-9", "WCHAIR-001", 1, testNow.Add(-time.Hour))
	returned.RenterName = "Hong"

	rentals := []domain.RentalRecord{older, newer, returned}

	t.Run("Name is trimmed and case-insensitive, latest wins", func(t *testing.T) {
		match, err := service.FindForReturn(rentals, "Hong ", " 1234 ", "WCHAIR-001")
		require.NoError(t, err)
		assert.Equal(t, domain.RentalID("r-2"), match.ID)
	})

	t.Run("Equal timestamps fall back to greater id", func(t *testing.T) {
		a := activeRental("r-a", "CRUTCH-101", 1, daysFromNow(0))
		b := activeRental("r-b", "CRUTCH-101", 1, daysFromNow(0))

		match, err := service.FindForReturn([]domain.RentalRecord{b, a}, "Kim Minji", "1234", "CRUTCH-101")
		require.NoError(t, err)
		assert.Equal(t, domain.RentalID("r-b"), match.ID)
	})

	t.Run("Returned records never match", func(t *testing.T) {
		_, err := service.FindForReturn([]domain.RentalRecord{returned}, "Hong", "1234", "WCHAIR-001")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("Phone and item must match exactly", func(t *testing.T) {
		_, err := service.FindForReturn(rentals, "hong", "9999", "WCHAIR-001")
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		_, err = service.FindForReturn(rentals, "hong", "1234", "CRUTCH-101")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Contains(t, err.Error(), "no matching active rental")
	})

	t.Run("Result is a copy", func(t *testing.T) {
		match, err := service.FindForReturn(rentals, "hong", "1234", "WCHAIR-001")
		require.NoError(t, err)
		match.RenterName = "changed"
		assert.Equal(t, "Hong", rentals[1].RenterName)
	})
}
