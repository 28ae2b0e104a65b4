// SPDX-License-Identifier: MIT

package nested

import (
	"fmt"
	"reflect"
)

// Zeros returns an n-dimensional structure where every dimension has size
// elements and every leaf is the int 0. Inner levels are []any so the result
// has the same shape a decoder would produce for the equivalent JSON.
//
// Example: Zeros(2, 3) → [[0 0 0] [0 0 0] [0 0 0]].
// Returns ErrBadDimension if n < 1 and ErrNegativeSize if size < 0.
func Zeros(n, size int) ([]any, error) {
	if n < 1 {
		return nil, fmt.Errorf("Zeros(%d, %d): %w", n, size, ErrBadDimension)
	}
	if size < 0 {
		return nil, fmt.Errorf("Zeros(%d, %d): %w", n, size, ErrNegativeSize)
	}

	return zeros(n, size), nil
}

// zeros builds one level and recurses; every sub-structure is distinct.
func zeros(n, size int) []any {
	out := make([]any, size)
	for i := range out {
		if n == 1 {
			out[i] = 0
		} else {
			out[i] = zeros(n-1, size)
		}
	}

	return out
}

// Flatten returns every non-slice value reachable from s, depth first and in
// order. A slice that is already flat comes back as an equal copy.
//
// Example: Flatten([1 [2 [3 4]] 5]) → [1 2 3 4 5].
func Flatten(s []any) []any {
	out := make([]any, 0, len(s))

	return flattenInto(out, s)
}

// flattenInto appends the leaves of s to out.
func flattenInto(out []any, s []any) []any {
	for _, v := range s {
		switch x := v.(type) {
		case []any:
			out = flattenInto(out, x)
		case []byte:
			out = append(out, x)
		default:
			rv := reflect.ValueOf(v)
			if rv.Kind() != reflect.Slice {
				out = append(out, v)
				continue
			}
			inner := make([]any, rv.Len())
			for i := range inner {
				inner[i] = rv.Index(i).Interface()
			}
			out = flattenInto(out, inner)
		}
	}

	return out
}

// At follows indices through nested slices and returns the value found.
// With no indices At returns v unchanged.
//
// Example: At([[1 2] [3 4] [5 6]], 0, 0) → 1.
// Returns ErrNotSlice or ErrOutOfRange, annotated with the failing step.
func At(v any, indices ...int) (any, error) {
	cur := v
	for step, idx := range indices {
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Slice {
			return nil, fmt.Errorf("At: step %d: %w", step, ErrNotSlice)
		}
		if idx < 0 || idx >= rv.Len() {
			return nil, fmt.Errorf("At: step %d: index %d of %d: %w", step, idx, rv.Len(), ErrOutOfRange)
		}
		cur = rv.Index(idx).Interface()
	}

	return cur, nil
}
