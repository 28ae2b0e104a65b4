// Package arrkit is a toolbox of small, pure slice operations: building
// ranges and matrices, reshaping, summarising, searching and rendering
// in-memory sequences.
//
// Every operation stands alone. Nothing keeps state between calls, nothing
// blocks, and inputs are never modified: each call allocates and returns a
// new value.
//
// Packages:
//
//	seq/     — generation (Interval, Odds, Identity) & reshaping (Head, Tail, Double,
//	           Insert, Shift, SwapHeadAndTail, Chunks, PropagateByPosition, SelectMany)
//	agg/     — numeric aggregates (SumPairwise, Average, Balance, MaxItems, LongestIncreasingRun)
//	find/    — search & membership (IndexOf, Count, Distinct, Common, IndicesOfOdd, HasValueAtOwnIndex)
//	strs/    — string projections (Lengths, SameLength, Join, HexRGB, SortDigitNames)
//	truthy/  — falsy semantics for decoded values (IsFalsy, Compact, CountFalsy, CompactZero)
//	nested/  — arbitrarily nested slices (Zeros, Flatten, At)
//
// Errors are package-level sentinels checked with errors.Is; functions
// never panic on user input. Option constructors (agg.WithPrecision) do
// panic on nonsensical values, which are programmer errors.
//
// The arrkit command (cmd/arrkit) exposes every operation over YAML or JSON
// documents:
//
//	echo '[1, 2, 3, 4, 5]' | arrkit chunks --size 2
//
//	go get github.com/katalvlaran/arrkit
package arrkit
