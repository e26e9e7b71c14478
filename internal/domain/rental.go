package domain

import (
	"time"

	"mobility-rental-backend/internal/utils"
)

// RentalID is the opaque token of a rental record
type RentalID string

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "ACTIVE"
	RentalStatusReturned RentalStatus = "RETURNED"
)

func (s RentalStatus) IsValid() bool {
	switch s {
	case RentalStatusActive, RentalStatusReturned:
		return true
	default:
		return false
	}
}

// EligibilityClass decides the loan duration; priority renters get the longer loan.
type EligibilityClass string

const (
	EligibilityStandard EligibilityClass = "STANDARD"
	EligibilityPriority EligibilityClass = "PRIORITY"
)

func (c EligibilityClass) IsValid() bool {
	switch c {
	case EligibilityStandard, EligibilityPriority:
		return true
	default:
		return false
	}
}

// RentalRecord is one rental transaction in the ledger.
// Only the return transition mutates it after creation.
type RentalRecord struct {
	ID          RentalID         `json:"id"`
	ItemID      ItemID           `json:"item_id"`
	RenterName  string           `json:"renter_name"`
	PhoneSuffix string           `json:"phone_suffix"`
	Region      string           `json:"region"`
	Eligibility EligibilityClass `json:"eligibility"`
	Quantity    int              `json:"quantity"`
	StartDate   utils.Date       `json:"start_date"`
	DueDate     utils.Date       `json:"due_date"`
	Status      RentalStatus     `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	ReturnedAt  *time.Time       `json:"returned_at,omitempty"`
}

func (r *RentalRecord) IsReturned() bool {
	return r.Status == RentalStatusReturned
}

// IsActiveAt reports whether the record reserves stock at instant: it has
// started and has not been returned. Passing the due date does not free
// stock; only an explicit return does.
func (r *RentalRecord) IsActiveAt(instant time.Time) bool {
	return r.IsActiveOn(utils.DateOf(instant))
}

func (r *RentalRecord) IsActiveOn(day utils.Date) bool {
	return !r.IsReturned() && !day.Before(r.StartDate)
}

// IsOverdueAt reports an active record whose due date lies before instant's date
func (r *RentalRecord) IsOverdueAt(instant time.Time) bool {
	day := utils.DateOf(instant)
	return r.IsActiveOn(day) && day.After(r.DueDate)
}

// CoversDate reports whether day falls inside the loan window [start, due]
func (r *RentalRecord) CoversDate(day utils.Date) bool {
	return !day.Before(r.StartDate) && !day.After(r.DueDate)
}

// MarkReturned applies the active -> returned transition
func (r *RentalRecord) MarkReturned(at time.Time) {
	returned := at
	r.Status = RentalStatusReturned
	r.ReturnedAt = &returned
}

// Clone returns a copy that shares no memory with r
func (r RentalRecord) Clone() RentalRecord {
	if r.ReturnedAt != nil {
		t := *r.ReturnedAt
		r.ReturnedAt = &t
	}
	return r
}

// CloneRentals deep-copies a ledger slice
func CloneRentals(rentals []RentalRecord) []RentalRecord {
	out := make([]RentalRecord, len(rentals))
	for i := range rentals {
		out[i] = rentals[i].Clone()
	}
	return out
}

// CloneItems copies an inventory slice
func CloneItems(items []EquipmentItem) []EquipmentItem {
	return append(make([]EquipmentItem, 0, len(items)), items...)
}

// FindRental returns the index of id in rentals, or -1
func FindRental(rentals []RentalRecord, id RentalID) int {
	for i := range rentals {
		if rentals[i].ID == id {
			return i
		}
	}
	return -1
}
