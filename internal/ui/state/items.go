package state

import (
	"slices"

	"github.com/atomicstack/rightclick/internal/menu"
)

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	if items == nil {
		return []menu.Item{}
	}
	return slices.Clone(items)
}

// selectable reports whether the cursor may rest on item. Separators are
// skipped; plain labels stay reachable so their text can be read and filtered.
func selectable(item menu.Item) bool {
	return !menu.IsSeparator(item)
}

func pick(items []menu.Item, indices []int) []menu.Item {
	picked := make([]menu.Item, len(indices))
	for i, idx := range indices {
		picked[i] = items[idx]
	}
	return picked
}
