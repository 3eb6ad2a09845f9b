// SPDX-License-Identifier: MIT

package numstr

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

var groupingStripper = strings.NewReplacer(",", "", "_", "")

// Clean removes ',' and '_' grouping separators and surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(groupingStripper.Replace(text))
}

// Validate cleans text and checks it against p. It returns the cleaned text.
// Failures wrap ErrInvalidFormat or a *RangeError.
func Validate(p Precision, text string) (string, error) {
	c := Clean(text)
	if c == "" {
		return "", numstrErrorf(opValidate, text, ErrInvalidFormat)
	}
	if err := p.Validate(c); err != nil {
		return "", numstrErrorf(opValidate, text, err)
	}

	return c, nil
}

// Bounds are optional textual limits. An empty or non-numeric side is ignored.
type Bounds struct {
	Min string
	Max string
}

// Clamp limits value, which must be valid for p, to the numeric sides of b.
// A bound p cannot hold exactly, such as "99.5" for an integer precision, is
// rounded toward the inside of its range first. When Min exceeds Max, Max wins.
func (b Bounds) Clamp(p Precision, value string) string {
	if lo, ok := bound(p, b.Min, apd.RoundCeiling); ok && p.Compare(value, lo) < 0 {
		value = lo
	}
	if hi, ok := bound(p, b.Max, apd.RoundFloor); ok && p.Compare(value, hi) > 0 {
		value = hi
	}

	return value
}

// bound returns text as a valid value of p, rounding with r when p cannot
// represent it. ok is false for malformed text.
func bound(p Precision, text string, r apd.Rounder) (string, bool) {
	if v, err := Validate(p, text); err == nil {
		return v, true
	}
	f, isFitter := p.(fitter)
	if !isFitter {
		return "", false
	}
	d, _, err := apd.NewFromString(Clean(text))
	if err != nil || d.Form != apd.Finite {
		return "", false
	}

	return f.fit(d, r)
}

// Increment adds step to current.
//
// An unparseable current counts as 0 and an unparseable step as 1. The sum
// saturates at the limits of p and is then clamped to b.
func Increment(p Precision, current, step string, b Bounds) string {
	return adjust(p, current, step, 1, b)
}

// Decrement subtracts step from current with the same rules as Increment.
func Decrement(p Precision, current, step string, b Bounds) string {
	return adjust(p, current, step, -1, b)
}

func adjust(p Precision, current, step string, sign int, b Bounds) string {
	cur, err := Validate(p, current)
	if err != nil {
		cur = "0"
	}
	st, err := Validate(p, step)
	if err != nil {
		st = "1"
	}

	return b.Clamp(p, p.Step(cur, st, sign))
}

// Filter decides which runes a field accepts while the user types.
type Filter struct {
	AllowNegative   bool
	AllowDecimal    bool
	AllowScientific bool
}

// FilterFor returns the keystroke filter matching p.
// Unsigned integers reject '-', integers reject '.' and exponents.
func FilterFor(p Precision) Filter {
	switch q := p.(type) {
	case *intPrecision:
		return Filter{AllowNegative: q.min.Sign() < 0}
	case decimalPrecision:
		return Filter{AllowNegative: true, AllowDecimal: q.places > 0, AllowScientific: true}
	default:
		return Filter{AllowNegative: true, AllowDecimal: true, AllowScientific: true}
	}
}

// Accept reports whether r may be appended to current.
func (f Filter) Accept(r rune, current string) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '-':
		return f.AllowNegative && current == ""
	case r == '.':
		return f.AllowDecimal && !strings.Contains(current, ".")
	case r == 'e' || r == 'E':
		return f.AllowScientific && current != "" && !strings.ContainsAny(current, "eE")
	case r == ',' || r == '_':
		return true
	}

	return false
}
