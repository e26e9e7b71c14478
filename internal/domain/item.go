package domain

// ItemID identifies an equipment type in the catalogue (e.g. "WCHAIR-001")
type ItemID string

// EquipmentItem is one equipment type and how many units the program owns
type EquipmentItem struct {
	ID            ItemID `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
}

// DefaultCatalogue is seeded when the store holds no inventory yet
func DefaultCatalogue() []EquipmentItem {
	return []EquipmentItem{
		{ID: "WCHAIR-001", Name: "Manual wheelchair (standard)", TotalQuantity: 6},
		{ID: "WCHAIR-002", Name: "Lightweight wheelchair", TotalQuantity: 3},
		{ID: "WCHAIR-003", Name: "Reclining care wheelchair", TotalQuantity: 2},
		{ID: "CRUTCH-101", Name: "Crutches", TotalQuantity: 10},
	}
}

// FindItem returns the index of id in items, or -1
func FindItem(items []EquipmentItem, id ItemID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// ItemName resolves the display name for id, falling back to the raw id
// when the item has been deleted from the catalogue.
func ItemName(items []EquipmentItem, id ItemID) string {
	if i := FindItem(items, id); i >= 0 {
		return items[i].Name
	}
	return string(id)
}
