package services

import "github.com/StickerShuttle/shuttle-cms-backend/models"

// GroupItemsByProduct collapses items sharing a product name, summing
// quantity. Groups keep first-occurrence order and the first item's fields.
func GroupItemsByProduct(items []models.OrderItem) []models.GroupedItem {
	grouped := make([]models.GroupedItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if i, ok := index[item.ProductName]; ok {
			grouped[i].TotalQuantity += item.Quantity
			continue
		}
		index[item.ProductName] = len(grouped)
		grouped = append(grouped, models.GroupedItem{
			OrderItem:     item,
			TotalQuantity: item.Quantity,
		})
	}
	return grouped
}

// TotalUnits sums item quantities.
func TotalUnits(items []models.OrderItem) int {
	units := 0
	for _, item := range items {
		units += item.Quantity
	}
	return units
}
