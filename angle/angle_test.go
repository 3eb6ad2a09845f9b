// SPDX-License-Identifier: MIT

package angle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathval/angle"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestConversions checks each unit against degrees and the round trip back.
func TestConversions(t *testing.T) {
	require.InDelta(t, 180, angle.ToDegrees(math.Pi, angle.Radians), tol)
	require.InDelta(t, 90, angle.ToDegrees(100, angle.Gradians), tol)
	require.InDelta(t, 90, angle.ToDegrees(0.25, angle.Turns), tol)
	require.Equal(t, 12.5, angle.ToDegrees(12.5, angle.DegMinSec)) // DMS is numerically degrees

	for _, u := range []angle.Unit{angle.Degrees, angle.Radians, angle.Gradians, angle.Turns, angle.DegMinSec} {
		back := angle.ToDegrees(angle.FromDegrees(123.456, u), u)
		require.InDelta(t, 123.456, back, tol, "unit %s", u)
	}
}

func TestUnitNamesAndSuffixes(t *testing.T) {
	require.Equal(t, "°", angle.Degrees.Suffix())
	require.Equal(t, " rad", angle.Radians.Suffix())
	require.Equal(t, " grad", angle.Gradians.Suffix())
	require.Equal(t, " turns", angle.Turns.Suffix())
	require.Equal(t, "", angle.DegMinSec.Suffix())

	u, err := angle.ParseUnit("Gon")
	require.NoError(t, err)
	require.Equal(t, angle.Gradians, u)
	_, err = angle.ParseUnit("furlong")
	require.ErrorIs(t, err, angle.ErrUnknownUnit)
}

// TestNormalize covers both wrapping modes, including the boundary fixed points.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   float64
		mode angle.Normalization
		want float64
	}{
		{370, angle.ZeroTo360, 10},
		{-30, angle.ZeroTo360, 330},
		{720, angle.ZeroTo360, 0},
		{270, angle.NegativeTo180, -90},
		{-270, angle.NegativeTo180, 90},
		{180, angle.NegativeTo180, 180},
		{-180, angle.NegativeTo180, -180},
		{1000, angle.None, 1000},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, angle.Normalize(tc.in, tc.mode), tol, "in=%v mode=%v", tc.in, tc.mode)
	}
}

// TestParseDMSDialects walks the symbol, letter and space dialects.
func TestParseDMSDialects(t *testing.T) {
	cases := []struct {
		in   string
		want angle.DMS
	}{
		{`45°30'15"`, angle.DMS{Degrees: 45, Minutes: 30, Seconds: 15}},
		{`-12°30'`, angle.DMS{Degrees: 12, Minutes: 30, Negative: true}},
		{"45d30m15.5s", angle.DMS{Degrees: 45, Minutes: 30, Seconds: 15.5}},
		{"45D30M", angle.DMS{Degrees: 45, Minutes: 30}},
		{"45 30 15", angle.DMS{Degrees: 45, Minutes: 30, Seconds: 15}},
		{"45", angle.DMS{Degrees: 45}},
		{"４５°３０′", angle.DMS{Degrees: 45, Minutes: 30}},                // full-width digits, prime
		{"10°5′30″", angle.DMS{Degrees: 10, Minutes: 5, Seconds: 30}},    // typographic primes
		{"−5°", angle.DMS{Degrees: 5, Negative: true}},                   // U+2212 minus sign
		{"7°x'", angle.DMS{Degrees: 7}},                                  // unreadable minutes default to 0
		{"45''15", angle.DMS{Degrees: 45, Seconds: 15}},                  // empty minutes slot
		{"45°°15", angle.DMS{Degrees: 45, Seconds: 15}},                  // empty minutes slot
		{"45dm15s", angle.DMS{Degrees: 45, Seconds: 15}},                 // empty minutes slot
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := angle.ParseDMS(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseDMSRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "45.5°", "x°30'"} {
		_, err := angle.ParseDMS(in)
		require.ErrorIs(t, err, angle.ErrInvalidFormat, "input %q", in)
	}
}

// TestDMSString checks that zero trailing parts are omitted.
func TestDMSString(t *testing.T) {
	require.Equal(t, "-45°", angle.NewDMS(-45, 0, 0).String())
	require.Equal(t, "45°30'", angle.NewDMS(45, 30, 0).String())
	require.Equal(t, `45°30'15"`, angle.NewDMS(45, 30, 15).String())
	require.Equal(t, `45°30'15.50"`, angle.NewDMS(45, 30, 15.5).String())
	require.Equal(t, `45°0'15"`, angle.NewDMS(45, 0, 15).String())
}

// TestDMSRoundTrip ensures splitting decimal degrees does not leak float noise.
func TestDMSRoundTrip(t *testing.T) {
	v := angle.NewDMS(45, 30, 15)
	require.Equal(t, v, angle.DMSFromDegrees(v.ToDegrees()))

	require.Equal(t, angle.DMS{Degrees: 10, Minutes: 30}, angle.DMSFromDegrees(10.5))
	require.Equal(t, angle.DMS{Degrees: 0, Minutes: 15, Negative: true}, angle.DMSFromDegrees(-0.25))
}

func TestParseAndFormat(t *testing.T) {
	cases := []struct {
		in   string
		unit angle.Unit
		want float64
	}{
		{"90°", angle.Degrees, 90},
		{" 1.5 grad", angle.Gradians, 1.35},
		{"3.141592653589793 rad", angle.Radians, 180},
		{"0.5 turns", angle.Turns, 180},
		{"0.5turn", angle.Turns, 180},
		{`45°30'`, angle.DegMinSec, 45.5},
	}
	for _, tc := range cases {
		got, err := angle.Parse(tc.in, tc.unit)
		require.NoError(t, err, "input %q", tc.in)
		require.InDelta(t, tc.want, got, tol, "input %q", tc.in)
	}

	_, err := angle.Parse("ninety", angle.Degrees)
	require.ErrorIs(t, err, angle.ErrInvalidFormat)
	_, err = angle.Parse("  ", angle.Radians)
	require.ErrorIs(t, err, angle.ErrInvalidFormat)

	require.Equal(t, "3.1416", angle.Format(180, angle.Radians, 4))
	require.Equal(t, "45°30'", angle.Format(45.5, angle.DegMinSec, 2))
	require.Equal(t, "-10°15'", angle.Format(-10.25, angle.DegMinSec, 0))
	require.Equal(t, "100", angle.Format(90, angle.Gradians, 0))
}
