// SPDX-License-Identifier: MIT

package seq

import "math"

// Interval returns the consecutive integers from start to end, both inclusive.
//
// Example: Interval(-2, 2) → [-2 -1 0 1 2].
// Returns ErrBadRange if start > end and ErrTooLarge if the range holds
// more than math.MaxInt values.
// Complexity: O(end-start) time and memory.
func Interval(start, end int) ([]int, error) {
	if start > end {
		return nil, opErrorf("Interval", ErrBadRange)
	}
	span := end - start
	if span < 0 || span == math.MaxInt { // wrapped, or span+1 would
		return nil, opErrorf("Interval", ErrTooLarge)
	}
	out := make([]int, span+1)
	for i := range out {
		out[i] = start + i
	}

	return out, nil
}

// Odds returns the first n odd positive numbers: 1, 3, 5, ...
// Returns ErrNegativeCount if n < 0.
func Odds(n int) ([]int, error) {
	if n < 0 {
		return nil, opErrorf("Odds", ErrNegativeCount)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = 2*i + 1
	}

	return out, nil
}

// Identity returns the n×n identity matrix as row slices: 1 on the main
// diagonal, 0 elsewhere. Identity(0) is an empty matrix.
// Rows are backed by one contiguous allocation but never overlap.
// Returns ErrNegativeCount if n < 0 and ErrTooLarge if n² overflows int.
// Complexity: O(n²) time and memory.
func Identity(n int) ([][]int, error) {
	if n < 0 {
		return nil, opErrorf("Identity", ErrNegativeCount)
	}
	if n > 0 && n > math.MaxInt/n {
		return nil, opErrorf("Identity", ErrTooLarge)
	}
	flat := make([]int, n*n)
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = flat[i*n : (i+1)*n : (i+1)*n]
		rows[i][i] = 1
	}

	return rows, nil
}
