package util

import "sort"

// PartitionPoint returns the index of the first element of s for which pred is false.
// s must be partitioned so that pred holds for a prefix and fails for the rest.
// Every ordered lookup in the ring engine goes through here so all of them break ties the same way.
func PartitionPoint[T any](s []T, pred func(T) bool) int {
	return sort.Search(len(s), func(i int) bool {
		return !pred(s[i])
	})
}

// SearchSorted looks for target in the ascending slice s, returning its position and
// whether it was found.
func SearchSorted(s []uint64, target uint64) (int, bool) {
	i := PartitionPoint(s, func(v uint64) bool {
		return v < target
	})

	return i, i < len(s) && s[i] == target
}
