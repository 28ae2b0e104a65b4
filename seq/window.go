// SPDX-License-Identifier: MIT

package seq

// Head returns a copy of the first n items of s.
// n larger than len(s) returns the whole slice.
// Returns ErrNegativeCount if n < 0.
func Head[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, opErrorf("Head", ErrNegativeCount)
	}
	n = min(n, len(s))

	return clone(s[:n]), nil
}

// Tail returns a copy of the last n items of s.
// n larger than len(s) returns the whole slice; Tail(s, 0) is empty.
// Returns ErrNegativeCount if n < 0.
func Tail[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, opErrorf("Tail", ErrNegativeCount)
	}
	n = min(n, len(s))

	return clone(s[len(s)-n:]), nil
}

// clone copies s into a fresh non-nil slice.
func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	return out
}
