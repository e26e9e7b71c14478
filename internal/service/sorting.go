package service

import (
	"sort"
	"strings"

	"mobility-rental-backend/internal/errs"
)

// StockSort orders the availability view
type StockSort string

const (
	StockSortDefault       StockSort = "default"
	StockSortAvailableDesc StockSort = "avail_desc"
	StockSortQuantityDesc  StockSort = "qty_desc"
	StockSortNameAsc       StockSort = "name_asc"
	StockSortNameDesc      StockSort = "name_desc"
)

// RentalSort orders rental lists
type RentalSort string

const (
	RentalSortDefault     RentalSort = "default"
	RentalSortDueAsc      RentalSort = "due_asc"
	RentalSortDueDesc     RentalSort = "due_desc"
	RentalSortNameAsc     RentalSort = "name_asc"
	RentalSortNameDesc    RentalSort = "name_desc"
	RentalSortCreatedAsc  RentalSort = "created_asc"
	RentalSortCreatedDesc RentalSort = "created_desc"
)

func ParseStockSort(s string) (StockSort, error) {
	switch key := StockSort(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return StockSortDefault, nil
	case StockSortDefault, StockSortAvailableDesc, StockSortQuantityDesc, StockSortNameAsc, StockSortNameDesc:
		return key, nil
	default:
		return "", errs.Validation("sort", "unknown stock order "+s)
	}
}

// ParseRentalSort parses s, using fallback when s is empty
func ParseRentalSort(s string, fallback RentalSort) (RentalSort, error) {
	switch key := RentalSort(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return fallback, nil
	case RentalSortDefault, RentalSortDueAsc, RentalSortDueDesc, RentalSortNameAsc,
		RentalSortNameDesc, RentalSortCreatedAsc, RentalSortCreatedDesc:
		return key, nil
	default:
		return "", errs.Validation("sort", "unknown rental order "+s)
	}
}

// SortStock orders stock in place; ties fall back to the item name, and the
// default order keeps catalogue order.
func SortStock(stock []Availability, key StockSort) {
	byName := func(i, j int) bool { return stock[i].Item.Name < stock[j].Item.Name }

	switch key {
	case StockSortNameAsc:
		sort.SliceStable(stock, byName)
	case StockSortNameDesc:
		sort.SliceStable(stock, func(i, j int) bool { return stock[i].Item.Name > stock[j].Item.Name })
	case StockSortAvailableDesc:
		sort.SliceStable(stock, func(i, j int) bool {
			if stock[i].Available != stock[j].Available {
				return stock[i].Available > stock[j].Available
			}
			return byName(i, j)
		})
	case StockSortQuantityDesc:
		sort.SliceStable(stock, func(i, j int) bool {
			if stock[i].Item.TotalQuantity != stock[j].Item.TotalQuantity {
				return stock[i].Item.TotalQuantity > stock[j].Item.TotalQuantity
			}
			return byName(i, j)
		})
	}
}

// SortRentals orders views in place; the default order keeps ledger order
func SortRentals(views []RentalView, key RentalSort) {
	switch key {
	case RentalSortDueAsc:
		sort.SliceStable(views, func(i, j int) bool { return views[i].DueDate.Before(views[j].DueDate) })
	case RentalSortDueDesc:
		sort.SliceStable(views, func(i, j int) bool { return views[i].DueDate.After(views[j].DueDate) })
	case RentalSortNameAsc:
		sort.SliceStable(views, func(i, j int) bool { return views[i].RenterName < views[j].RenterName })
	case RentalSortNameDesc:
		sort.SliceStable(views, func(i, j int) bool { return views[i].RenterName > views[j].RenterName })
	case RentalSortCreatedAsc:
		sort.SliceStable(views, func(i, j int) bool { return views[i].CreatedAt.Before(views[j].CreatedAt) })
	case RentalSortCreatedDesc:
		sort.SliceStable(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	}
}
