// SPDX-License-Identifier: MIT

// Package nested works with slices of arbitrary and mixed nesting depth,
// the shape JSON and YAML decoders hand back as []any.
//
// What:
//
//   - Zeros: build an n-dimensional size×…×size structure filled with 0.
//   - Flatten: collapse any depth of nesting into one level, left to right.
//   - At: follow an index path (a[i][j][k]...) through nested slices.
//
// Any slice kind counts as a nesting level ([]any, []int, [][]string, ...),
// except []byte which is treated as a single value. Strings, maps, structs
// and arrays are leaves.
//
// Complexity:
//
//   - Zeros: O(size^n) time and memory.
//   - Flatten: O(total elements) plus reflection overhead for typed slices.
//   - At: O(len(indices)).
//
// Errors:
//
//   - ErrBadDimension: Zeros called with n < 1.
//   - ErrNegativeSize: Zeros called with size < 0.
//   - ErrNotSlice: At stepped into a value that is not a slice.
//   - ErrOutOfRange: At used an index outside the current slice.
package nested
