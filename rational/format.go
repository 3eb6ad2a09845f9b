// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"strconv"
)

// DisplayFormat selects how Format renders a fraction.
type DisplayFormat int

const (
	// AsFraction renders "N/D" (or "N" when whole).
	AsFraction DisplayFormat = iota
	// AsMixedNumber renders "W N/D".
	AsMixedNumber
	// AsDecimal renders fixed decimals.
	AsDecimal
)

// String renders the simplified value as "N/D", or "N" when it is whole.
// The sign is carried by the numerator.
func (f Fraction) String() string {
	s := f.Simplify()
	if s.Den == 1 {
		return strconv.FormatInt(s.Num, 10)
	}

	return fmt.Sprintf("%d/%d", s.Num, s.Den)
}

// MixedString renders the simplified value as a mixed number: "2 1/2", "-2 1/2",
// "1/2" when the whole part is zero and "3" when there is no fractional part.
func (f Fraction) MixedString() string {
	s := f.Simplify()
	if s.Den == 1 {
		return strconv.FormatInt(s.Num, 10)
	}

	whole := s.WholePart()
	rem := s.FractionalNumerator()
	if whole == 0 {
		return fmt.Sprintf("%d/%d", s.Num, s.Den)
	}
	if rem == 0 {
		return strconv.FormatInt(whole, 10)
	}

	sign := ""
	if s.IsNegative() {
		sign = "-"
	}

	return fmt.Sprintf("%s%d %d/%d", sign, abs64(whole), rem, s.Den)
}

// DecimalString renders Num/Den with exactly precision digits after the point.
func (f Fraction) DecimalString(precision int) string {
	if precision < 0 {
		precision = 0
	}

	return strconv.FormatFloat(f.Float64(), 'f', precision, 64)
}

// LaTeX renders the simplified value as \frac{N}{D}; negative values put the sign
// in front of the fraction and whole values render as plain integers.
func (f Fraction) LaTeX() string {
	s := f.Simplify()
	if s.Den == 1 {
		return strconv.FormatInt(s.Num, 10)
	}
	if s.Num < 0 {
		return fmt.Sprintf(`-\frac{%d}{%d}`, -s.Num, s.Den)
	}

	return fmt.Sprintf(`\frac{%d}{%d}`, s.Num, s.Den)
}

// Format dispatches on the display format; precision only applies to AsDecimal.
func (f Fraction) Format(format DisplayFormat, precision int) string {
	switch format {
	case AsMixedNumber:
		return f.MixedString()
	case AsDecimal:
		return f.DecimalString(precision)
	default:
		return f.String()
	}
}
