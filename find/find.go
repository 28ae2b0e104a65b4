package find

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// IndexOf returns the index of the first occurrence of v in s, or -1.
func IndexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// Count returns how many items of s equal v.
func Count[T comparable](s []T, v T) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}

	return n
}

// Distinct returns the unique values of s in order of first occurrence.
// All NaN values count as one value; only the first is kept.
// Distinct is idempotent: Distinct(Distinct(s)) equals Distinct(s).
// Complexity: O(n) expected time, O(n) memory.
func Distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	seenNaN := false
	out := make([]T, 0, len(s))
	for _, v := range s {
		if isNaN(v) {
			if !seenNaN {
				seenNaN = true
				out = append(out, v)
			}
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Common returns the items of a that also occur in b, in a's order.
// Duplicates in a are kept as many times as they appear there.
// A NaN in a matches any NaN in b.
//
// Example: Common([1 2 2 3], [2 3 4]) → [2 2 3].
// Complexity: O(len a + len b) expected time.
func Common[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	nanInB := false
	for _, v := range b {
		if isNaN(v) {
			nanInB = true
			continue
		}
		inB[v] = struct{}{}
	}
	out := make([]T, 0, min(len(a), len(b)))
	for _, v := range a {
		if isNaN(v) {
			if nanInB {
				out = append(out, v)
			}
			continue
		}
		if _, ok := inB[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// IndicesOfOdd returns the positions of s holding odd numbers.
// Negative odd numbers count as odd.
func IndicesOfOdd[I constraints.Integer](s []I) []int {
	out := make([]int, 0, len(s))
	for i, v := range s {
		if v%2 != 0 {
			out = append(out, i)
		}
	}

	return out
}

// HasValueAtOwnIndex reports whether some s[i] equals i.
func HasValueAtOwnIndex[I constraints.Integer](s []I) bool {
	for i, v := range s {
		if v >= 0 && uint64(v) == uint64(i) {
			return true
		}
	}

	return false
}

// isNaN reports whether v is a floating-point NaN, including a NaN held in an
// interface or typed as a named float. Only values unequal to themselves pay
// for the reflection.
func isNaN[T comparable](v T) bool {
	if v == v {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
