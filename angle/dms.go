// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// secondsScale rounds split seconds to micro-arcseconds so float noise from the
// decimal split does not surface as 29'60.00" or 15.00".
const secondsScale = 1e6

// DMS is an angle in degrees, minutes and seconds. Degrees holds the magnitude;
// the sign lives in Negative.
type DMS struct {
	Degrees  int
	Minutes  uint
	Seconds  float64
	Negative bool
}

// NewDMS takes the sign from degrees and stores its magnitude.
func NewDMS(degrees int, minutes uint, seconds float64) DMS {
	neg := degrees < 0
	if neg {
		degrees = -degrees
	}

	return DMS{Degrees: degrees, Minutes: minutes, Seconds: seconds, Negative: neg}
}

// DMSFromDegrees splits decimal degrees by successive flooring.
func DMSFromDegrees(degrees float64) DMS {
	neg := degrees < 0
	a := math.Abs(degrees)

	d := math.Floor(a)
	rem := (a - d) * 60
	m := math.Floor(rem)
	s := math.Round((rem-m)*60*secondsScale) / secondsScale

	if s >= 60 {
		s, m = 0, m+1
	}
	if m >= 60 {
		m, d = 0, d+1
	}

	return DMS{Degrees: int(d), Minutes: uint(m), Seconds: s, Negative: neg}
}

// ToDegrees returns the signed decimal degrees d + m/60 + s/3600.
func (v DMS) ToDegrees() float64 {
	deg := float64(v.Degrees) + float64(v.Minutes)/60 + v.Seconds/3600
	if v.Negative {
		return -deg
	}

	return deg
}

// String omits trailing zero components; whole seconds print without decimals,
// fractional seconds with two.
func (v DMS) String() string {
	sign := ""
	if v.Negative {
		sign = "-"
	}
	switch {
	case v.Seconds == 0 && v.Minutes == 0:
		return fmt.Sprintf("%s%d°", sign, v.Degrees)
	case v.Seconds == 0:
		return fmt.Sprintf("%s%d°%d'", sign, v.Degrees, v.Minutes)
	case v.Seconds == math.Trunc(v.Seconds):
		return fmt.Sprintf("%s%d°%d'%.0f\"", sign, v.Degrees, v.Minutes, v.Seconds)
	default:
		return fmt.Sprintf("%s%d°%d'%.2f\"", sign, v.Degrees, v.Minutes, v.Seconds)
	}
}

// primeFolder maps the prime glyphs (and their NFKC expansions) to ASCII marks.
var primeFolder = strings.NewReplacer("″", `"`, "′′", `"`, "′", "'", "−", "-")

// ParseDMS reads a DMS angle in the symbol, letter or space dialect.
// A leading '-' marks a negative angle; missing or unreadable minutes and seconds
// default to zero, but the degrees component must be an integer.
func ParseDMS(input string) (DMS, error) {
	s := strings.TrimSpace(primeFolder.Replace(norm.NFKC.String(input)))

	neg := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg, s = true, rest
	}

	for _, dialect := range []func(string) (DMS, bool){parseSymbols, parseLetters, parseSpaces} {
		if v, ok := dialect(s); ok {
			v.Negative = neg
			return v, nil
		}
	}

	return DMS{}, fmt.Errorf("ParseDMS(%q): %w", input, ErrInvalidFormat)
}

func parseSymbols(s string) (DMS, bool) {
	return dmsFromParts(splitAny(s, `°'"`), true)
}

func parseLetters(s string) (DMS, bool) {
	return dmsFromParts(splitAny(strings.ToLower(s), "dms"), true)
}

// splitAny splits s at every rune of seps. Empty fields are kept, so in
// "45''15" the seconds stay in the third slot.
func splitAny(s, seps string) []string {
	var parts []string
	for {
		i := strings.IndexAny(s, seps)
		if i < 0 {
			return append(parts, s)
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		parts = append(parts, s[:i])
		s = s[i+size:]
	}
}

func parseSpaces(s string) (DMS, bool) {
	return dmsFromParts(strings.Fields(s), false)
}

func dmsFromParts(parts []string, trim bool) (DMS, bool) {
	if len(parts) == 0 {
		return DMS{}, false
	}
	field := func(i int) string {
		if i >= len(parts) {
			return ""
		}
		if trim {
			return strings.TrimSpace(parts[i])
		}
		return parts[i]
	}

	deg, err := strconv.ParseInt(field(0), 10, 32)
	if err != nil || deg < 0 {
		return DMS{}, false
	}
	v := DMS{Degrees: int(deg)}
	if m, err := strconv.ParseUint(field(1), 10, 32); err == nil {
		v.Minutes = uint(m)
	}
	if sec, err := strconv.ParseFloat(field(2), 64); err == nil && !math.IsNaN(sec) && !math.IsInf(sec, 0) {
		v.Seconds = sec
	}

	return v, true
}
