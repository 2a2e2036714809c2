// Package collection provides generic slice helpers for the console's
// render and stats paths, which derive filtered and grouped views without
// mutating the underlying snapshots.
package collection

import "sort"

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountBy counts elements per key.
func CountBy[T any, K comparable](s []T, fn func(T) K) map[K]int {
	out := map[K]int{}
	for _, v := range s {
		out[fn(v)]++
	}
	return out
}

// SortBy returns a sorted copy of s using the less function.
// The input slice is never modified.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
