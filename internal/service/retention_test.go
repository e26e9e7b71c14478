package service_test

import (
	"testing"
	"time"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/service"
	"mobility-rental-backend/internal/utils"

	"github.com/stretchr/testify/assert"
)

func ids(rentals []domain.RentalRecord) []domain.RentalID {
	out := make([]domain.RentalID, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, r.ID)
	}
	return out
}

func TestPruneReturned(t *testing.T) {
	window := service.DefaultRetentionWindow

	t.Run("Keeps recent returns and every active record", func(t *testing.T) {
		rentals := []domain.RentalRecord{
			returnedRental("a", "WCHAIR-001", 1, testNow.AddDate(0, 0, -31)),
			returnedRental("b", "WCHAIR-001", 1, testNow.AddDate(0, 0, -10)),
			activeRental("c", "WCHAIR-001", 1, daysFromNow(-90)),
		}

		kept := service.PruneReturned(rentals, testNow, window)
		assert.Equal(t, []domain.RentalID{"b", "c"}, ids(kept))
		assert.Len(t, rentals, 3)
	})

	t.Run("Exactly one window old is dropped", func(t *testing.T) {
		rentals := []domain.RentalRecord{
			returnedRental("edge", "WCHAIR-001", 1, testNow.Add(-window)),
			returnedRental("inside", "WCHAIR-001", 1, testNow.Add(-window+time.Second)),
		}

		kept := service.PruneReturned(rentals, testNow, window)
		assert.Equal(t, []domain.RentalID{"inside"}, ids(kept))
	})

	t.Run("Missing return time falls back to due date then start date", func(t *testing.T) {
		byDue := returnedRental("due", "WCHAIR-001", 1, testNow)
		byDue.ReturnedAt = nil
		byDue.DueDate = daysFromNow(-5)

		byStart := byDue
		byStart.ID = "start"
		byStart.DueDate = utils.Date{}
		byStart.StartDate = daysFromNow(-40)

		epoch := byStart
		epoch.ID = "epoch"
		epoch.StartDate = utils.Date{}

		assert.Equal(t, daysFromNow(-5).Time(time.UTC), service.RetentionReference(&byDue))
		assert.Equal(t, time.Unix(0, 0).UTC(), service.RetentionReference(&epoch))

		kept := service.PruneReturned([]domain.RentalRecord{byDue, byStart, epoch}, testNow, window)
		assert.Equal(t, []domain.RentalID{"due"}, ids(kept))
	})

	t.Run("Custom window", func(t *testing.T) {
		rentals := []domain.RentalRecord{returnedRental("a", "WCHAIR-001", 1, testNow.AddDate(0, 0, -3))}

		assert.Empty(t, service.PruneReturned(rentals, testNow, 48*time.Hour))
		assert.Len(t, service.PruneReturned(rentals, testNow, 96*time.Hour), 1)
	})
}
