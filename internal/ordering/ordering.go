package ordering

import (
	"cmp"
	"slices"
)

// Order returns a new slice holding the elements of items sorted by ascending key.
// Elements with equal keys keep their relative order. The input is never modified.
func Order[T any](items []T, key func(T) float64) []T {
	type keyed struct {
		key  float64
		item T
	}

	// Each key is computed once.
	entries := make([]keyed, len(items))
	for i, item := range items {
		entries[i] = keyed{key: key(item), item: item}
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})

	ordered := make([]T, len(entries))
	for i, e := range entries {
		ordered[i] = e.item
	}
	return ordered
}
