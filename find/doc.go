// Package find answers membership and position questions about slices:
// where a value is, how often it occurs, which values are unique or shared,
// and which positions hold odd numbers or their own index.
//
// Every function is a single linear (or, with set lookups, expected linear)
// pass and returns fresh slices; inputs are never modified.
package find
