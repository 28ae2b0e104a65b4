// SPDX-License-Identifier: MIT

// Package agg reduces numeric slices to sums, means, balances and rankings.
//
// What:
//
//   - SumPairwise: element-wise sum of two slices of possibly different length.
//   - Average: arithmetic mean rounded to a configurable number of decimals.
//   - Balance: running income-minus-expense total over ledger entries.
//   - MaxItems: the n largest values in descending order.
//   - LongestIncreasingRun: length of the longest strictly increasing contiguous run.
//
// Options:
//
//   - WithPrecision(d): decimals kept by Average (DefaultPrecision = 2).
//
// All functions are generic over Number (integers and floats, including named
// types) or cmp.Ordered, and never modify their inputs.
//
// Errors:
//
//   - ErrNegativeCount: MaxItems called with n < 0.
package agg
