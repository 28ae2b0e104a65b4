// SPDX-License-Identifier: MIT

package nested

import "errors"

var (
	// ErrBadDimension indicates a dimension count below one.
	ErrBadDimension = errors.New("nested: dimension count must be at least 1")

	// ErrNegativeSize indicates a negative per-dimension size.
	ErrNegativeSize = errors.New("nested: size must be non-negative")

	// ErrNotSlice indicates an index was applied to a non-slice value.
	ErrNotSlice = errors.New("nested: value is not a slice")

	// ErrOutOfRange indicates an index outside the bounds of a slice.
	ErrOutOfRange = errors.New("nested: index out of range")
)
