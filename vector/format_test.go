// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/mathval/vector"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestUnitNotation covers coefficient elision and sign placement.
func TestUnitNotation(t *testing.T) {
	cases := []struct {
		v    vector.Vector
		want string
	}{
		{vector.New(3, 4, -2), "3î + 4ĵ - 2k̂"},
		{vector.New(-1, 1), "-î + ĵ"},
		{vector.New(-3, -1), "-3î - ĵ"},
		{vector.New(0, 0, 7), "7k̂"},
		{vector.New(1e-12, 0), "0"},
		{vector.Zeros(0), "0"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.v.UnitNotation(), "vector %v", tc.v)
	}
}

func TestNotationDelimiters(t *testing.T) {
	require.Equal(t, "[", vector.Row.Left())
	require.Equal(t, "⟨", vector.AngleBrackets.Left())
	require.Equal(t, "⟩", vector.AngleBrackets.Right())
	require.True(t, vector.Column.IsVertical())
	require.False(t, vector.Row.IsVertical())
	require.Equal(t, "", vector.UnitVector.Left())
}

// TestFormatGolden locks every rendering of one vector into a golden file.
func TestFormatGolden(t *testing.T) {
	v := vector.New(3, -4, 0.5, 1, -1, 0, 2.25)

	var b strings.Builder
	for _, n := range []struct {
		name string
		n    vector.Notation
	}{
		{"row", vector.Row},
		{"column", vector.Column},
		{"angle", vector.AngleBrackets},
		{"parentheses", vector.Parentheses},
		{"unit", vector.UnitVector},
	} {
		fmt.Fprintf(&b, "%s:\n%s\n", n.name, v.Format(n.n))
	}
	fmt.Fprintf(&b, "latex-row:\n%s\n", v.LaTeX(false))
	fmt.Fprintf(&b, "latex-column:\n%s\n", v.LaTeX(true))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "vector_formats", []byte(b.String()))
}

func TestParse(t *testing.T) {
	for in, want := range map[string][]float64{
		"[1, 2, 3]": {1, 2, 3},
		"(0.5,-1)":  {0.5, -1},
		"⟨1e3, 2⟩":  {1000, 2},
		" 4 , 5 ":   {4, 5},
		"7":         {7},
	} {
		v, err := vector.Parse(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, v.Components(), "input %q", in)
	}

	for _, in := range []string{"", "[]", "[1, 2", "(1, x)", "1,,2", "[inf]"} {
		_, err := vector.Parse(in)
		require.ErrorIs(t, err, vector.ErrInvalidFormat, "input %q", in)
	}
}

// TestFormatParseRoundTrip feeds single-line notations back through Parse.
func TestFormatParseRoundTrip(t *testing.T) {
	v := vector.New(-2.5, 0, 14)
	for _, n := range []vector.Notation{vector.Row, vector.AngleBrackets, vector.Parentheses} {
		got, err := vector.Parse(v.Format(n))
		require.NoError(t, err)
		require.Equal(t, v.Components(), got.Components())
	}
}
