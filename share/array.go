package share

import "sort"

// InSortedSlice reports whether x is in a, which must be sorted.
func InSortedSlice(a []string, x string) bool {
	idx := sort.SearchStrings(a, x)
	if idx >= len(a) {
		return false
	}

	return a[idx] == x
}
