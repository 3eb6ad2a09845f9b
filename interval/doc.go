// SPDX-License-Identifier: MIT

// Package interval models real intervals with open, closed or half-open ends.
//
// An unbounded side is encoded as an infinite endpoint: Min = -Inf means the
// interval extends to negative infinity, Max = +Inf to positive infinity. New
// normalises the sign of infinite endpoints, so callers can pass either.
//
// Two textual forms are understood by Parse and produced by Format:
//
//	[0, 10)          mathematical notation
//	{x | 0 ≤ x < 10} set-builder notation
package interval
