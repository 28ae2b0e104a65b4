// SPDX-License-Identifier: MIT

package agg

import "fmt"

// DefaultPrecision is the number of decimals Average keeps when no
// WithPrecision option is supplied.
const DefaultPrecision = 2

// MaxPrecision bounds WithPrecision; float64 carries ~15 significant digits.
const MaxPrecision = 15

// Option customizes an aggregate by mutating its options before evaluation.
// Applying the same Option twice is harmless; the last writer wins.
type Option func(*options)

// options holds the resolved configuration of a single call.
type options struct {
	precision int
}

// WithPrecision sets how many decimals Average rounds to.
// Panics if d is outside [0, 15]: that is a programmer error, not input data.
func WithPrecision(d int) Option {
	if d < 0 || d > MaxPrecision {
		panic(fmt.Sprintf("agg: WithPrecision(%d): precision must be in [0, %d]", d, MaxPrecision))
	}
	return func(o *options) {
		o.precision = d
	}
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
