// SPDX-License-Identifier: MIT

package seq

// Double returns s followed by s again, preserving order.
// Example: Double([1 2]) → [1 2 1 2].
func Double[T any](s []T) []T {
	out := make([]T, 0, 2*len(s))
	out = append(out, s...)

	return append(out, s...)
}

// Insert returns a new slice with item placed at index; the elements at and
// after index move one position right. index == len(s) appends.
// s itself is left untouched.
// Returns ErrOutOfRange if index is outside [0, len(s)].
func Insert[T any](s []T, item T, index int) ([]T, error) {
	if index < 0 || index > len(s) {
		return nil, opErrorf("Insert", ErrOutOfRange)
	}
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:index]...)
	out = append(out, item)

	return append(out, s[index:]...), nil
}

// Shift rotates s by n positions. Positive n moves items toward the end
// (the last n items wrap to the front); negative n rotates the other way.
// n is reduced modulo len(s).
//
// Example: Shift([1 2 3 4], 1) → [4 1 2 3]; Shift([1 2 3 4], -1) → [2 3 4 1].
func Shift[T any](s []T, n int) []T {
	l := len(s)
	if l == 0 {
		return []T{}
	}
	k := ((n % l) + l) % l // normalized right rotation in [0, l)
	out := make([]T, 0, l)
	out = append(out, s[l-k:]...)

	return append(out, s[:l-k]...)
}

// SwapHeadAndTail exchanges the first and last halves of s. For odd lengths
// the middle item stays in place.
//
// Example: [1 2 3 4 5] → [4 5 3 1 2]; [1 2 3 4] → [3 4 1 2]; [1] → [1].
func SwapHeadAndTail[T any](s []T) []T {
	l := len(s)
	mid := l / 2
	out := make([]T, 0, l)
	out = append(out, s[l-mid:]...)
	if l%2 == 1 {
		out = append(out, s[mid])
	}

	return append(out, s[:mid]...)
}

// Chunks splits s into consecutive pieces of exactly size items; the last
// piece holds the remainder. Each chunk is an independent copy.
//
// Example: Chunks([1 2 3 4 5], 2) → [[1 2] [3 4] [5]].
// Returns ErrBadChunkSize if size <= 0.
// Complexity: O(n) time and memory.
func Chunks[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, opErrorf("Chunks", ErrBadChunkSize)
	}
	n := len(s) / size
	if len(s)%size != 0 {
		n++
	}
	out := make([][]T, 0, n)
	for i := 0; i < len(s); i += size {
		end := len(s)
		if size < end-i {
			end = i + size
		}
		out = append(out, clone(s[i:end]))
	}

	return out, nil
}

// PropagateByPosition repeats every item as many times as its 1-based position.
//
// Example: ['a' 'b' 'c'] → ['a' 'b' 'b' 'c' 'c' 'c'].
// Complexity: O(n²) output size.
func PropagateByPosition[T any](s []T) []T {
	out := make([]T, 0, len(s)*(len(s)+1)/2)
	for i, v := range s {
		for r := 0; r <= i; r++ {
			out = append(out, v)
		}
	}

	return out
}

// SelectMany projects every item of s into a slice with fn and concatenates
// the projections in order.
// Returns ErrNilSelector if fn is nil.
func SelectMany[T, R any](s []T, fn func(T) []R) ([]R, error) {
	if fn == nil {
		return nil, opErrorf("SelectMany", ErrNilSelector)
	}
	out := make([]R, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v)...)
	}

	return out, nil
}
