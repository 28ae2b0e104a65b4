package truthy

import (
	"math"
	"reflect"
)

// IsFalsy reports whether v is falsy (see the package documentation).
func IsFalsy(v any) bool {
	// fast path for the shapes decoders actually produce
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case int:
		return x == 0
	case float64:
		return x == 0 || math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return c == 0 || math.IsNaN(real(c)) || math.IsNaN(imag(c))
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Compact returns the truthy items of s in their original order.
//
// Example: Compact([0 false "cat" NaN true ""]) → ["cat" true].
func Compact(s []any) []any {
	out := make([]any, 0, len(s))
	for _, v := range s {
		if !IsFalsy(v) {
			out = append(out, v)
		}
	}

	return out
}

// CountFalsy returns how many items of s are falsy.
func CountFalsy(s []any) int {
	n := 0
	for _, v := range s {
		if IsFalsy(v) {
			n++
		}
	}

	return n
}

// CompactZero returns the items of s that differ from T's zero value.
//
// Example: CompactZero([]string{"a", "", "b"}) → ["a" "b"].
func CompactZero[T comparable](s []T) []T {
	var zero T
	out := make([]T, 0, len(s))
	for _, v := range s {
		if v != zero {
			out = append(out, v)
		}
	}

	return out
}
