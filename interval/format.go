// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Notation selects the textual form produced by Format.
type Notation int

const (
	Mathematical Notation = iota // [0, 10)
	SetBuilder                   // {x | 0 ≤ x < 10}
)

// formatNumber prints whole values without decimals and everything else with up
// to ten decimals, trailing zeros removed.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")

	return strings.TrimSuffix(s, ".")
}

func (i Interval) endpoints() (string, string) {
	lo, hi := "-∞", "∞"
	if !i.LeftUnbounded() {
		lo = formatNumber(i.Min)
	}
	if !i.RightUnbounded() {
		hi = formatNumber(i.Max)
	}

	return lo, hi
}

// String renders the mathematical notation, e.g. "[0, 10)" or "(-∞, 5]".
func (i Interval) String() string {
	lo, hi := i.endpoints()

	return fmt.Sprintf("%s%s, %s%s", i.Bounds.LeftBracket(), lo, hi, i.Bounds.RightBracket())
}

// SetNotation renders the set-builder form, e.g. "{x | 0 ≤ x < 10}".
func (i Interval) SetNotation() string {
	lo, hi := i.endpoints()
	lc, rc := "<", "<"
	if i.Bounds.IncludesLeft() {
		lc = "≤"
	}
	if i.Bounds.IncludesRight() {
		rc = "≤"
	}

	return fmt.Sprintf("{x | %s %s x %s %s}", lo, lc, rc, hi)
}

// Format dispatches on the notation.
func (i Interval) Format(n Notation) string {
	if n == SetBuilder {
		return i.SetNotation()
	}

	return i.String()
}
