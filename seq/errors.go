// SPDX-License-Identifier: MIT

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRange indicates an interval whose start lies after its end.
	ErrBadRange = errors.New("seq: start must not exceed end")

	// ErrTooLarge indicates a requested result whose length does not fit in an int.
	ErrTooLarge = errors.New("seq: result length overflows int")

	// ErrNegativeCount indicates a negative item count (n) was requested.
	ErrNegativeCount = errors.New("seq: count must be non-negative")

	// ErrOutOfRange indicates an insertion index outside [0, len].
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrBadChunkSize indicates a chunk size that is zero or negative.
	ErrBadChunkSize = errors.New("seq: chunk size must be positive")

	// ErrNilSelector indicates SelectMany received a nil selector function.
	ErrNilSelector = errors.New("seq: selector is nil")
)

// opErrorf tags a sentinel with the name of the failing operation.
// The sentinel stays matchable through errors.Is.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
