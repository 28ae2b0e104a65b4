// SPDX-License-Identifier: MIT
package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrkit/seq"
)

// TestHeadTail covers clamping and zero counts for both windows.
func TestHeadTail(t *testing.T) {
	s := []int{5, 3, 8, 2, 4}
	cases := []struct {
		name string
		n    int
		head []int
		tail []int
	}{
		{"Zero", 0, []int{}, []int{}},
		{"Two", 2, []int{5, 3}, []int{2, 4}},
		{"All", 5, []int{5, 3, 8, 2, 4}, []int{5, 3, 8, 2, 4}},
		{"Overflow", 9, []int{5, 3, 8, 2, 4}, []int{5, 3, 8, 2, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := seq.Head(s, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.head, h)

			tl, err := seq.Tail(s, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.tail, tl)
		})
	}
}

// TestHeadTail_NegativeCount ensures negative n is rejected.
func TestHeadTail_NegativeCount(t *testing.T) {
	_, err := seq.Head([]int{1}, -1)
	assert.ErrorIs(t, err, seq.ErrNegativeCount)
	_, err = seq.Tail([]int{1}, -1)
	assert.ErrorIs(t, err, seq.ErrNegativeCount)
}

// TestHead_NoAlias verifies the result does not share storage with the input.
func TestHead_NoAlias(t *testing.T) {
	s := []string{"a", "b", "c"}
	h, err := seq.Head(s, 2)
	require.NoError(t, err)
	h[0] = "z"
	assert.Equal(t, "a", s[0])
}
