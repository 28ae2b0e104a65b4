// Package truthy gives dynamically typed values ([]any, as produced by JSON
// or YAML decoders) a notion of "falsy" and filters on it.
//
// A value is falsy when it is:
//
//   - nil, or a nil pointer, slice, map, channel, function or interface;
//   - false;
//   - a numeric zero of any integer, float or complex kind;
//   - a floating-point NaN;
//   - the empty string.
//
// Named types count by their underlying kind, so a `type Celsius float64`
// holding 0 is falsy. Structs, arrays and non-nil references are never falsy;
// in particular an empty but non-nil slice or map is truthy.
//
// For statically typed slices, CompactZero drops zero values without
// reflection.
package truthy
