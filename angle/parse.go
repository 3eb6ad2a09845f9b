// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// unitSuffixes are stripped before a plain number is read; "grad" precedes "rad"
// and "turns" precedes "turn" so the longer suffix wins.
var unitSuffixes = []string{"°", "grad", "rad", "turns", "turn"}

// Parse reads input expressed in unit and returns decimal degrees.
// DegMinSec input goes through ParseDMS; other units accept a float with an
// optional unit suffix ("1.5 rad", "90°").
func Parse(input string, unit Unit) (float64, error) {
	s := strings.TrimSpace(norm.NFKC.String(input))
	if s == "" {
		return 0, fmt.Errorf("Parse(%q): %w", input, ErrInvalidFormat)
	}
	if unit == DegMinSec {
		v, err := ParseDMS(s)
		if err != nil {
			return 0, err
		}
		return v.ToDegrees(), nil
	}

	for _, suf := range unitSuffixes {
		if rest, ok := strings.CutSuffix(s, suf); ok {
			s = strings.TrimSpace(rest)
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Parse(%q): %w", input, ErrInvalidFormat)
	}

	return ToDegrees(v, unit), nil
}

// Format renders degrees in unit. DegMinSec uses the DMS form; other units print
// the converted value with precision decimals and no suffix.
func Format(degrees float64, unit Unit, precision int) string {
	if unit == DegMinSec {
		return DMSFromDegrees(degrees).String()
	}
	if precision < 0 {
		precision = 0
	}

	return strconv.FormatFloat(FromDegrees(degrees, unit), 'f', precision, 64)
}
