package recommend

import "sort"

type scoredItem struct {
	key   string
	score float64
}

// rank orders items by score descending, breaking ties by key ascending so
// output is a reproducible total order, and truncates to the first n keys.
// n <= 0 yields an empty result, never an error.
func rank(items []scoredItem, n int) []string {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].key < items[j].key
	})
	if n > len(items) {
		n = len(items)
	}
	keys := make([]string, 0, n)
	for _, item := range items[:n] {
		keys = append(keys, item.key)
	}
	return keys
}
