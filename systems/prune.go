package systems

// prune compacts items in place, dropping those marked deleted
// Vacated tail slots are zeroed so removed entities can be collected
func prune[T any](items []T, deleted func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !deleted(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
