// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
)

// Bounds tells which endpoints belong to the interval.
type Bounds int

const (
	Closed        Bounds = iota // [a, b]
	Open                        // (a, b)
	HalfOpenLeft                // [a, b)
	HalfOpenRight               // (a, b]
)

// String returns the bracket pair, e.g. "[)".
func (b Bounds) String() string {
	return b.LeftBracket() + b.RightBracket()
}

func (b Bounds) LeftBracket() string {
	if b.IncludesLeft() {
		return "["
	}

	return "("
}

func (b Bounds) RightBracket() string {
	if b.IncludesRight() {
		return "]"
	}

	return ")"
}

// IncludesLeft reports whether the left endpoint is a member.
func (b Bounds) IncludesLeft() bool { return b == Closed || b == HalfOpenLeft }

// IncludesRight reports whether the right endpoint is a member.
func (b Bounds) IncludesRight() bool { return b == Closed || b == HalfOpenRight }

// boundsOf is the inverse of IncludesLeft/IncludesRight.
func boundsOf(left, right bool) Bounds {
	switch {
	case left && right:
		return Closed
	case left:
		return HalfOpenLeft
	case right:
		return HalfOpenRight
	default:
		return Open
	}
}

// Interval is a set of reals between Min and Max. Min/Max are ±Inf for
// unbounded sides.
type Interval struct {
	Min    float64
	Max    float64
	Bounds Bounds
}

// New builds an interval, mapping any infinite Min to -Inf and any infinite Max
// to +Inf. Reversed endpoints are kept; IsEmpty reports them.
func New(min, max float64, bounds Bounds) Interval {
	if math.IsInf(min, 0) {
		min = math.Inf(-1)
	}
	if math.IsInf(max, 0) {
		max = math.Inf(1)
	}

	return Interval{Min: min, Max: max, Bounds: bounds}
}

// ClosedOf returns [min, max].
func ClosedOf(min, max float64) Interval { return New(min, max, Closed) }

// OpenOf returns (min, max).
func OpenOf(min, max float64) Interval { return New(min, max, Open) }

// HalfOpenLeftOf returns [min, max).
func HalfOpenLeftOf(min, max float64) Interval { return New(min, max, HalfOpenLeft) }

// HalfOpenRightOf returns (min, max].
func HalfOpenRightOf(min, max float64) Interval { return New(min, max, HalfOpenRight) }

// FromNegInfinity returns (-∞, max] or (-∞, max).
func FromNegInfinity(max float64, includeMax bool) Interval {
	return New(math.Inf(-1), max, boundsOf(false, includeMax))
}

// ToPosInfinity returns [min, ∞) or (min, ∞).
func ToPosInfinity(min float64, includeMin bool) Interval {
	return New(min, math.Inf(1), boundsOf(includeMin, false))
}

// LeftUnbounded reports whether the interval extends to -∞.
func (i Interval) LeftUnbounded() bool { return math.IsInf(i.Min, 0) }

// RightUnbounded reports whether the interval extends to +∞.
func (i Interval) RightUnbounded() bool { return math.IsInf(i.Max, 0) }

// Contains tests membership honouring the bound kinds; an unbounded side
// accepts everything.
func (i Interval) Contains(v float64) bool {
	aboveMin := i.LeftUnbounded() || v > i.Min || (i.Bounds.IncludesLeft() && v == i.Min)
	belowMax := i.RightUnbounded() || v < i.Max || (i.Bounds.IncludesRight() && v == i.Max)

	return aboveMin && belowMax
}

// IsEmpty reports whether no real satisfies the interval. Closed intervals are
// empty only when Min > Max; every other kind also when Min == Max. Intervals
// with an unbounded side are never empty.
func (i Interval) IsEmpty() bool {
	if i.LeftUnbounded() || i.RightUnbounded() {
		return false
	}
	if i.Bounds == Closed {
		return i.Min > i.Max
	}

	return i.Min >= i.Max
}

// Intersects is a quick overlap test using strict comparisons on the endpoints.
// It ignores the bound kinds, so [0, 1] and [1, 2] do not intersect here even
// though they share 1; use Intersection for the exact answer.
func (i Interval) Intersects(o Interval) bool {
	return i.Min < o.Max && o.Min < i.Max
}

// Intersection returns the overlap of i and o, taking the bound kinds into
// account. ErrEmpty when nothing is shared.
func (i Interval) Intersection(o Interval) (Interval, error) {
	lo, incLo := i.Min, i.Bounds.IncludesLeft()
	switch {
	case o.Min > lo:
		lo, incLo = o.Min, o.Bounds.IncludesLeft()
	case o.Min == lo:
		incLo = incLo && o.Bounds.IncludesLeft()
	}

	hi, incHi := i.Max, i.Bounds.IncludesRight()
	switch {
	case o.Max < hi:
		hi, incHi = o.Max, o.Bounds.IncludesRight()
	case o.Max == hi:
		incHi = incHi && o.Bounds.IncludesRight()
	}

	out := New(lo, hi, boundsOf(incLo && !math.IsInf(lo, 0), incHi && !math.IsInf(hi, 0)))
	if out.IsEmpty() || i.IsEmpty() || o.IsEmpty() {
		return Interval{}, fmt.Errorf("Intersection(%s, %s): %w", i, o, ErrEmpty)
	}

	return out, nil
}

// Length is Max - Min.
func (i Interval) Length() (float64, error) {
	if i.LeftUnbounded() || i.RightUnbounded() {
		return 0, ErrUnbounded
	}

	return i.Max - i.Min, nil
}

// Midpoint is (Min + Max) / 2.
func (i Interval) Midpoint() (float64, error) {
	if i.LeftUnbounded() || i.RightUnbounded() {
		return 0, ErrUnbounded
	}

	return (i.Min + i.Max) / 2, nil
}
