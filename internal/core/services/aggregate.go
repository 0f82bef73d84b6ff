// internal/core/services/aggregate.go
package services

import "github.com/pantryhq/pantry-be/internal/core/domain"

// AggregateInventory merges physically distinct records that share the
// same (name, brand) pair into a single counted view entry.
//
// The grouping key is the exact concatenation of name and brand, with no
// case folding or normalization; records differing only in letter case
// form separate groups. Entries appear in first-occurrence order of
// their key, and each entry carries the field values of the last record
// seen for that key in scan order. A pure projection: the input is never
// mutated and an empty input yields an empty output.
func AggregateInventory(items []domain.FoodItem) []domain.InventoryEntry {
	entries := make([]domain.InventoryEntry, 0, len(items))
	index := make(map[string]int, len(items))

	for i := range items {
		item := &items[i]
		key := item.GroupKey()

		if at, ok := index[key]; ok {
			count := entries[at].Count + 1
			entries[at] = viewEntry(item, count)
			continue
		}

		index[key] = len(entries)
		entries = append(entries, viewEntry(item, 1))
	}

	return entries
}

func viewEntry(item *domain.FoodItem, count int) domain.InventoryEntry {
	return domain.InventoryEntry{
		ID:          item.ID,
		Name:        item.Name,
		Brand:       item.Brand,
		Quantity:    item.Quantity,
		Categories:  item.Categories,
		Ingredients: item.Ingredients,
		ImageURL:    item.ImageURL,
		SourceURL:   item.SourceURL,
		ExpiryDate:  item.ExpiryDate,
		Count:       count,
	}
}
