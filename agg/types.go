// SPDX-License-Identifier: MIT

package agg

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNegativeCount indicates a negative item count (n) was requested.
var ErrNegativeCount = errors.New("agg: count must be non-negative")

// Number is satisfied by every built-in integer and floating-point type and
// by named types derived from them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry is one ledger period: money in and money out.
// Expense may exceed Income; the period then contributes a negative amount.
type Entry[N Number] struct {
	Income  N
	Expense N
}

// Net returns Income - Expense for the period.
func (e Entry[N]) Net() N {
	return e.Income - e.Expense
}
