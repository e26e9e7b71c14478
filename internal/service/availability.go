package service

import (
	"time"

	"mobility-rental-backend/internal/domain"
)

// Availability is the derived stock view of one item at an instant
type Availability struct {
	Item      domain.EquipmentItem `json:"item"`
	Reserved  int                  `json:"reserved"`
	Available int                  `json:"available"`
}

// DashboardSummary aggregates stock over the whole catalogue
type DashboardSummary struct {
	TotalQuantity      int `json:"total_quantity"`
	InUse              int `json:"in_use"`
	Available          int `json:"available"`
	UtilizationPercent int `json:"utilization_percent"`
}

// ReservedByItem sums the quantity of every record active at instant, keyed by item
func ReservedByItem(rentals []domain.RentalRecord, at time.Time) map[domain.ItemID]int {
	reserved := make(map[domain.ItemID]int)
	for i := range rentals {
		if rentals[i].IsActiveAt(at) {
			reserved[rentals[i].ItemID] += rentals[i].Quantity
		}
	}
	return reserved
}

// ComputeAvailability derives per-item stock at instant. Available is
// clamped at zero even when the ledger over-reserves an item.
func ComputeAvailability(items []domain.EquipmentItem, rentals []domain.RentalRecord, at time.Time) []Availability {
	reserved := ReservedByItem(rentals, at)

	stock := make([]Availability, 0, len(items))
	for _, item := range items {
		r := reserved[item.ID]
		stock = append(stock, Availability{
			Item:      item,
			Reserved:  r,
			Available: clampedAvailable(item.TotalQuantity, r),
		})
	}
	return stock
}

// AvailableFor returns the available quantity of one item at instant; ok is
// false when the item is not in the catalogue.
func AvailableFor(items []domain.EquipmentItem, rentals []domain.RentalRecord, id domain.ItemID, at time.Time) (available int, ok bool) {
	i := domain.FindItem(items, id)
	if i < 0 {
		return 0, false
	}
	return clampedAvailable(items[i].TotalQuantity, ReservedByItem(rentals, at)[id]), true
}

// Bookable returns how many units of id a new rental can take without
// over-reserving the item on any day from its start on. An unreturned record
// reserves from its start date until it is returned, so the reservation never
// shrinks over time and its peak is the sum of every unreturned record of the
// item, whatever the start dates.
func Bookable(items []domain.EquipmentItem, rentals []domain.RentalRecord, id domain.ItemID) (available int, ok bool) {
	i := domain.FindItem(items, id)
	if i < 0 {
		return 0, false
	}

	peak := 0
	for j := range rentals {
		r := &rentals[j]
		if r.ItemID == id && !r.IsReturned() {
			peak += r.Quantity
		}
	}
	return clampedAvailable(items[i].TotalQuantity, peak), true
}

func clampedAvailable(total, reserved int) int {
	if total < 0 {
		total = 0
	}
	if available := total - reserved; available > 0 {
		return available
	}
	return 0
}

// Summarize totals the catalogue. In-use counts every active record,
// including ones whose item has since been deleted.
func Summarize(items []domain.EquipmentItem, rentals []domain.RentalRecord, at time.Time) DashboardSummary {
	var summary DashboardSummary
	for _, item := range items {
		if item.TotalQuantity > 0 {
			summary.TotalQuantity += item.TotalQuantity
		}
	}
	for _, qty := range ReservedByItem(rentals, at) {
		summary.InUse += qty
	}

	summary.Available = clampedAvailable(summary.TotalQuantity, summary.InUse)
	if summary.TotalQuantity > 0 {
		summary.UtilizationPercent = (summary.InUse*100*2 + summary.TotalQuantity) / (summary.TotalQuantity * 2)
	}
	return summary
}
