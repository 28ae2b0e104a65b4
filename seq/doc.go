// SPDX-License-Identifier: MIT

// Package seq builds and reshapes ordered slices.
//
// What:
//
//   - Generation: Interval (inclusive integer ranges), Odds, Identity matrices.
//   - Windows: Head and Tail (first / last n items, clamped to the slice length).
//   - Reshaping: Double, Insert, Shift (rotation), SwapHeadAndTail, Chunks,
//     PropagateByPosition and SelectMany (map-then-concatenate).
//
// Contract:
//
//   - Every function returns a NEW slice. Inputs are never mutated, and results
//     never alias the input backing array, so callers may modify either freely.
//   - Empty input yields an empty, non-nil result.
//   - Invalid scalar parameters are reported through sentinel errors; nothing
//     in this package panics on user input. Only a length that cannot be
//     allocated at all (beyond process memory) fails inside the runtime.
//
// Complexity:
//
//   - Interval, Odds, Head, Tail, Double, Insert, Shift, SwapHeadAndTail, Chunks: O(n) time and memory.
//   - Identity: O(n²) time and memory.
//   - PropagateByPosition: O(n²) output elements.
//   - SelectMany: O(total output) plus selector cost.
//
// Errors:
//
//   - ErrBadRange: Interval start is greater than end.
//   - ErrTooLarge: Interval or Identity would hold more than math.MaxInt items.
//   - ErrNegativeCount: a count (n) is negative.
//   - ErrOutOfRange: Insert index lies outside [0, len].
//   - ErrBadChunkSize: Chunks size is not positive.
//   - ErrNilSelector: SelectMany called with a nil selector.
package seq
