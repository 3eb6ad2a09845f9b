// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	negInfTokens = map[string]bool{"-∞": true, "−∞": true, "-inf": true, "-infinity": true, "neginf": true}
	posInfTokens = map[string]bool{"∞": true, "+∞": true, "inf": true, "infinity": true, "+inf": true, "posinf": true}
)

// Parse reads bracket notation ("[0, 10)", "(-inf, 5]") or set-builder notation
// ("{x | 0 <= x < 10}"). Any infinity token on a side makes that side unbounded,
// whatever its sign.
func Parse(input string) (Interval, error) {
	s := strings.TrimSpace(norm.NFKC.String(input))

	var (
		iv Interval
		ok bool
	)
	switch {
	case strings.HasPrefix(s, "{"):
		iv, ok = parseSetBuilder(s)
	default:
		iv, ok = parseBrackets(s)
	}
	if !ok {
		return Interval{}, fmt.Errorf("Parse(%q): %w", input, ErrInvalidFormat)
	}

	return iv, nil
}

func parseBrackets(s string) (Interval, bool) {
	if len(s) < 2 {
		return Interval{}, false
	}
	first, last := s[0], s[len(s)-1]
	if (first != '[' && first != '(') || (last != ']' && last != ')') {
		return Interval{}, false
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Interval{}, false
	}
	lo, okLo := parseBound(parts[0], math.Inf(-1))
	hi, okHi := parseBound(parts[1], math.Inf(1))
	if !okLo || !okHi {
		return Interval{}, false
	}

	return New(lo, hi, boundsOf(first == '[', last == ']')), true
}

// parseBound reads one endpoint; infinity tokens yield unbounded, the value used
// for the side being parsed.
func parseBound(s string, unbounded float64) (float64, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if negInfTokens[t] || posInfTokens[t] {
		return unbounded, true
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// parseSetBuilder reads "{x | a ≤ x < b}"; "<=" is accepted for "≤".
func parseSetBuilder(s string) (Interval, bool) {
	inner, ok := strings.CutPrefix(s, "{")
	if !ok {
		return Interval{}, false
	}
	if inner, ok = strings.CutSuffix(inner, "}"); !ok {
		return Interval{}, false
	}
	name, body, ok := strings.Cut(inner, "|")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Interval{}, false
	}

	body = strings.ReplaceAll(body, "<=", "≤")
	loText, incLo, rest, ok := cutComparison(body)
	if !ok {
		return Interval{}, false
	}
	varText, incHi, hiText, ok := cutComparison(rest)
	if !ok || strings.TrimSpace(varText) != name {
		return Interval{}, false
	}

	lo, okLo := parseBound(loText, math.Inf(-1))
	hi, okHi := parseBound(hiText, math.Inf(1))
	if !okLo || !okHi {
		return Interval{}, false
	}

	return New(lo, hi, boundsOf(incLo, incHi)), true
}

// cutComparison splits s around its first "<" or "≤", reporting whether the
// comparison is inclusive.
func cutComparison(s string) (before string, inclusive bool, after string, ok bool) {
	i := strings.IndexAny(s, "<≤")
	if i < 0 {
		return "", false, "", false
	}
	r, size := utf8.DecodeRuneInString(s[i:])

	return s[:i], r == '≤', s[i+size:], true
}
