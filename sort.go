package main

import "sort"

// SortByFieldDesc returns the records ordered by descending lexicographic
// comparison of the named field; empty strings sort last. The input is
// left untouched, the ordering is display-only and never persisted.
// Lexicographic order is correct for zero-padded ISO-8601 date strings,
// which is what the date fields hold.
func SortByFieldDesc(records []Record, field string) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i][field] > out[j][field]
	})
	return out
}
