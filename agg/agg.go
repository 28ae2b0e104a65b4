// SPDX-License-Identifier: MIT

package agg

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// SumPairwise adds a and b element by element. The result has the length of
// the longer input; positions missing from the shorter one count as zero.
//
// Example: SumPairwise([1 2 3], [10 20]) → [11 22 3].
// Complexity: O(max(len a, len b)).
func SumPairwise[N Number](a, b []N) []N {
	out := make([]N, max(len(a), len(b)))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}

	return out
}

// Average returns the arithmetic mean of s rounded half away from zero to
// DefaultPrecision decimals (see WithPrecision). An empty slice averages to 0.
//
// Example: Average([1 2 3 4]) → 2.5; Average([1 2 2]) → 1.67.
func Average[N Number](s []N, opts ...Option) float64 {
	if len(s) == 0 {
		return 0
	}
	o := gatherOptions(opts...)

	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	scale := math.Pow10(o.precision)

	return math.Round(sum/float64(len(s))*scale) / scale
}

// Balance folds ledger entries into the final balance:
// the sum over all periods of Income - Expense, starting from zero.
func Balance[N Number](entries []Entry[N]) N {
	var total N
	for _, e := range entries {
		total += e.Net()
	}

	return total
}

// MaxItems returns the n largest values of s in descending order.
// n larger than len(s) returns every value; s keeps its original order.
// Returns ErrNegativeCount if n < 0.
// Complexity: O(len(s)·log len(s)).
func MaxItems[N cmp.Ordered](s []N, n int) ([]N, error) {
	if n < 0 {
		return nil, fmt.Errorf("MaxItems: %w", ErrNegativeCount)
	}
	sorted := slices.Clone(s)
	if sorted == nil {
		sorted = []N{}
	}
	slices.SortFunc(sorted, func(a, b N) int {
		return cmp.Compare(b, a)
	})

	return sorted[:min(n, len(sorted)):min(n, len(sorted))], nil
}

// LongestIncreasingRun returns the length of the longest run of adjacent
// items where each is strictly greater than the one before it.
// A single item is a run of 1; an empty slice yields 0.
//
// Example: LongestIncreasingRun([1 2 1 2 3 1]) → 3.
// Complexity: O(n) time, O(1) memory.
func LongestIncreasingRun[N cmp.Ordered](s []N) int {
	if len(s) == 0 {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			cur++
			best = max(best, cur)
		} else {
			cur = 1
		}
	}

	return best
}
