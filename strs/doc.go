// SPDX-License-Identifier: MIT

// Package strs projects slices to and from strings.
//
// What:
//
//   - Lengths / SameLength: per-item character counts and their uniformity.
//   - Join / JoinWith: render any slice as a delimited list ("," by default).
//   - HexRGB: 24-bit integers to "#RRGGBB" colour codes.
//   - SortDigitNames: order English digit names ("zero".."nine") numerically.
//
// Lengths count characters (runes), not bytes: "héllo" has length 5.
//
// Errors:
//
//   - ErrColorRange: a colour value lies outside [0, 0xFFFFFF].
//   - ErrUnknownDigit: a name is not one of "zero".."nine".
package strs
