package service

import (
	"strings"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
)

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FindForReturn locates the unreturned rental matching a renter's name
// (trimmed, case-insensitive), phone suffix (trimmed, exact) and item.
// With several candidates the most recently created wins; equal timestamps
// fall back to the greater id.
func FindForReturn(rentals []domain.RentalRecord, name, phoneSuffix string, itemID domain.ItemID) (domain.RentalRecord, error) {
	wantName := normalizeName(name)
	wantPhone := strings.TrimSpace(phoneSuffix)

	best := -1
	for i := range rentals {
		r := &rentals[i]
		if r.IsReturned() || r.ItemID != itemID {
			continue
		}
		if normalizeName(r.RenterName) != wantName || strings.TrimSpace(r.PhoneSuffix) != wantPhone {
			continue
		}
		if best < 0 || newerThan(r, &rentals[best]) {
			best = i
		}
	}

	if best < 0 {
		return domain.RentalRecord{}, errs.NotFound("no matching active rental")
	}
	return rentals[best].Clone(), nil
}

func newerThan(a, b *domain.RentalRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
