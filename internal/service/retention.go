package service

import (
	"time"

	"mobility-rental-backend/internal/domain"
)

// DefaultRetentionWindow is how long a returned record is kept
const DefaultRetentionWindow = 30 * 24 * time.Hour

// RetentionReference is the instant a returned record ages from: its return
// time, else its due date, else its start date, else the Unix epoch.
func RetentionReference(r *domain.RentalRecord) time.Time {
	switch {
	case r.ReturnedAt != nil:
		return *r.ReturnedAt
	case !r.DueDate.IsZero():
		return r.DueDate.Time(time.UTC)
	case !r.StartDate.IsZero():
		return r.StartDate.Time(time.UTC)
	default:
		return time.Unix(0, 0).UTC()
	}
}

// PruneReturned returns a new ledger without the returned records whose
// reference instant is window or more before now. Unreturned records are
// always kept.
func PruneReturned(rentals []domain.RentalRecord, now time.Time, window time.Duration) []domain.RentalRecord {
	kept := make([]domain.RentalRecord, 0, len(rentals))
	for i := range rentals {
		r := &rentals[i]
		if !r.IsReturned() || now.Sub(RetentionReference(r)) < window {
			kept = append(kept, r.Clone())
		}
	}
	return kept
}
