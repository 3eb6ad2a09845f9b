// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a fraction from text. Forms are tried in order and the first that
// matches wins:
//
//	"1 1/2"  mixed number (whole, space, num/den)
//	"3/4"    simple fraction
//	"0.75"   decimal, approximated with DefaultMaxDenominator and simplified
//	"7"      integer
//
// Mixed and simple forms are returned as written (not simplified). A zero denominator
// disqualifies a form instead of failing outright.
func Parse(input string) (Fraction, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Fraction{}, fmt.Errorf("%s(%q): %w", opParse, input, ErrInvalidFormat)
	}
	if f, ok := parseMixed(s); ok {
		return f, nil
	}
	if f, ok := parseSimple(s); ok {
		return f, nil
	}
	if f, ok := parseDecimal(s); ok {
		return f, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromWhole(n), nil
	}

	return Fraction{}, fmt.Errorf("%s(%q): %w", opParse, input, ErrInvalidFormat)
}

func parseMixed(s string) (Fraction, bool) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Fraction{}, false
	}
	whole, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Fraction{}, false
	}
	num, den, ok := splitTerms(parts[1])
	if !ok {
		return Fraction{}, false
	}
	f, err := FromMixed(whole, num, den)
	if err != nil {
		return Fraction{}, false
	}

	return f, true
}

func parseSimple(s string) (Fraction, bool) {
	num, den, ok := splitTerms(s)
	if !ok {
		return Fraction{}, false
	}
	f, err := New(num, den)
	if err != nil {
		return Fraction{}, false
	}

	return f, true
}

// splitTerms parses "num/den" with optional spaces around each term; den must be non-zero.
func splitTerms(s string) (int64, int64, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil || den == 0 {
		return 0, 0, false
	}

	return num, den, true
}

// parseDecimal handles text with a decimal point or exponent. Pure integer text is
// left to the exact integer path so that values beyond 2^53 keep every digit.
func parseDecimal(s string) (Fraction, bool) {
	if strings.Contains(s, "/") || !strings.ContainsAny(s, ".eE") {
		return Fraction{}, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Fraction{}, false
	}
	f, err := FromFloat(v, DefaultMaxDenominator)
	if err != nil {
		return Fraction{}, false
	}

	return f, true
}
