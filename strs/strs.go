// SPDX-License-Identifier: MIT

package strs

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultSeparator is the delimiter used by Join.
const DefaultSeparator = ","

// maxRGB is the largest 24-bit colour value (#FFFFFF).
const maxRGB = 0xFFFFFF

// digitValues maps digit names to their numeric value.
var digitValues = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// Lengths returns the character count of every string in s.
func Lengths(s []string) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = utf8.RuneCountInString(v)
	}

	return out
}

// SameLength reports whether every string in s has the same character count.
// An empty slice is trivially uniform.
func SameLength(s []string) bool {
	if len(s) == 0 {
		return true
	}
	first := utf8.RuneCountInString(s[0])
	for _, v := range s[1:] {
		if utf8.RuneCountInString(v) != first {
			return false
		}
	}

	return true
}

// Join renders each item with fmt's default format and joins them with ",".
//
// Example: Join([1 2 3]) → "1,2,3".
func Join[T any](s []T) string {
	return JoinWith(s, DefaultSeparator)
}

// JoinWith is Join with a caller-chosen separator.
func JoinWith[T any](s []T, sep string) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}

	return b.String()
}

// HexRGB formats each value as an upper-case, zero-padded "#RRGGBB" code.
//
// Example: HexRGB([0 255 16777215]) → ["#000000" "#0000FF" "#FFFFFF"].
// Returns ErrColorRange (naming the offending position) for values outside
// [0, 0xFFFFFF].
func HexRGB(s []int) ([]string, error) {
	out := make([]string, len(s))
	for i, v := range s {
		if v < 0 || v > maxRGB {
			return nil, fmt.Errorf("HexRGB: item %d (%d): %w", i, v, ErrColorRange)
		}
		out[i] = fmt.Sprintf("#%06X", v)
	}

	return out, nil
}

// SortDigitNames returns a copy of s ordered by the numeric value of each
// digit name. Equal names keep their relative order.
//
// Example: ["nine" "one"] → ["one" "nine"].
// Returns ErrUnknownDigit if any item is not "zero".."nine".
func SortDigitNames(s []string) ([]string, error) {
	for i, v := range s {
		if _, ok := digitValues[v]; !ok {
			return nil, fmt.Errorf("SortDigitNames: item %d (%q): %w", i, v, ErrUnknownDigit)
		}
	}
	out := slices.Clone(s)
	if out == nil {
		out = []string{}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return digitValues[a] - digitValues[b]
	})

	return out, nil
}
