package utils

import "sort"

// SortByNewest orders items newest-first by the timestamp key. Records
// with unparseable timestamps sort last.
func SortByNewest[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return ParseTimestamp(key(items[i])).After(ParseTimestamp(key(items[j])))
	})
}

// FirstNonEmpty returns the first non-empty string, for timestamp
// preference chains like prescribedDate falling back to createdAt.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
