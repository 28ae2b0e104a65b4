// Package coerce converts loosely typed values, as produced by decoding YAML
// or JSON into `any`, into the typed slices the arrkit packages operate on.
//
// Decoders disagree on number representation (yaml.v3 yields int for integer
// literals, encoding/json yields float64 for everything), so numeric
// conversions accept any Go number kind and reject lossy conversions.
package coerce

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/arrkit/agg"
)

var (
	// ErrType indicates a value of the wrong shape (e.g. a map where a list was expected).
	ErrType = errors.New("coerce: unexpected type")

	// ErrNotInteger indicates a number with a fractional part (or out of int range)
	// where an integer was required.
	ErrNotInteger = errors.New("coerce: not an integer")
)

// List accepts any slice value and returns its items as []any.
func List(v any) ([]any, error) {
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("expected a list, got %s: %w", describe(v), ErrType)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, nil
}

// Scalars is List restricted to comparable leaves (numbers, strings, bools, nil),
// so the items can safely be used as map keys or compared with ==.
// Numbers are normalised with Scalar. The input is never modified.
func Scalars(v any) ([]any, error) {
	s, err := List(v)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(s))
	for i, x := range s {
		if !IsScalar(x) {
			return nil, fmt.Errorf("item %d: expected a scalar, got %s: %w", i, describe(x), ErrType)
		}
		out[i] = Scalar(x)
	}

	return out, nil
}

// Scalar gives numbers that are equal in value a single representation, so
// that 1, uint8(1) and 1.0 compare equal with ==. Integers, and floats with no
// fractional part, become int when they fit. Remaining floats (fractional,
// out of int range, infinite or NaN) become float64. Other values are
// returned unchanged.
func Scalar(v any) any {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := Int(v); err == nil {
			return n
		}
		return v
	case reflect.Float32, reflect.Float64:
		if n, err := Int(v); err == nil {
			return n
		}
		f, _ := Float(v)
		return f
	default:
		return v
	}
}

// IsScalar reports whether v is nil, a bool, a number or a string.
func IsScalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Float converts a single number of any kind to float64.
func Float(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("expected a number, got %s: %w", describe(v), ErrType)
	}
}

// Int converts a single number to int. Floats must be integral.
func Int(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("%d: %w", u, ErrNotInteger)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%v: %w", f, ErrNotInteger)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %s: %w", describe(v), ErrType)
	}
}

// Floats converts a list of numbers.
func Floats(v any) ([]float64, error) {
	return each(v, Float)
}

// Ints converts a list of integers.
func Ints(v any) ([]int, error) {
	return each(v, Int)
}

// Strings converts a list of strings. Numbers and bools are NOT stringified.
func Strings(v any) ([]string, error) {
	return each(v, func(x any) (string, error) {
		s, ok := x.(string)
		if !ok {
			return "", fmt.Errorf("expected a string, got %s: %w", describe(x), ErrType)
		}
		return s, nil
	})
}

// Entries converts a list of [income, expense] pairs into ledger entries.
func Entries(v any) ([]agg.Entry[float64], error) {
	return each(v, func(x any) (agg.Entry[float64], error) {
		pair, err := Floats(x)
		if err != nil {
			return agg.Entry[float64]{}, err
		}
		if len(pair) != 2 {
			return agg.Entry[float64]{}, fmt.Errorf("expected [income, expense], got %d values: %w", len(pair), ErrType)
		}
		return agg.Entry[float64]{Income: pair[0], Expense: pair[1]}, nil
	})
}

// Field extracts key from a decoded mapping. Both map[string]any and
// map[any]any (yaml.v3 with non-string keys) are accepted.
func Field(v any, key string) (any, error) {
	switch m := v.(type) {
	case map[string]any:
		if x, ok := m[key]; ok {
			return x, nil
		}
	case map[any]any:
		if x, ok := m[key]; ok {
			return x, nil
		}
	default:
		return nil, fmt.Errorf("expected a mapping, got %s: %w", describe(v), ErrType)
	}

	return nil, fmt.Errorf("missing field %q: %w", key, ErrType)
}

// each applies conv to every item of the list v, tagging failures with the item index.
func each[T any](v any, conv func(any) (T, error)) ([]T, error) {
	s, err := List(v)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(s))
	for i, x := range s {
		if out[i], err = conv(x); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return out, nil
}

// describe names the dynamic type of v for error messages.
func describe(v any) string {
	if v == nil {
		return "null"
	}

	return reflect.TypeOf(v).String()
}
