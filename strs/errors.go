// SPDX-License-Identifier: MIT

package strs

import "errors"

var (
	// ErrColorRange indicates a value that does not fit a 24-bit RGB colour.
	ErrColorRange = errors.New("strs: colour value out of range")

	// ErrUnknownDigit indicates a string that is not a lower-case English digit name.
	ErrUnknownDigit = errors.New("strs: unknown digit name")
)
