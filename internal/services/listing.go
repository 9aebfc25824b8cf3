package services

import (
	"sort"
	"strings"
)

// Search filters already-fetched rows in memory: case-insensitive substring
// match against every string keys yields for a row. An empty term returns
// the input unchanged. Every admin list view shares this instead of
// re-implementing its own filter.
func Search[T any](rows []T, term string, keys func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}

	matched := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, key := range keys(row) {
			if strings.Contains(strings.ToLower(key), term) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// SortByKey orders rows by a string key, ascending unless dir is "desc".
// The sort is stable so equal keys keep their fetched order.
func SortByKey[T any](rows []T, dir string, key func(T) string) {
	desc := strings.EqualFold(dir, "desc")
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := strings.ToLower(key(rows[i])), strings.ToLower(key(rows[j]))
		if desc {
			return a > b
		}
		return a < b
	})
}
