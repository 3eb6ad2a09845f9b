// SPDX-License-Identifier: MIT

package numstr_test

import (
	"testing"

	"github.com/katalvlaran/mathval/numstr"
	"github.com/stretchr/testify/require"
)

func TestFormatThousand(t *testing.T) {
	cases := []struct {
		in   string
		sep  rune
		want string
	}{
		{"1234567.89", ',', "1,234,567.89"},
		{"-1234567", ',', "-1,234,567"},
		{"123", ',', "123"},
		{"1,234", ',', "1,234"}, // regrouped
		{"1234", '\'', "1'234"},
		{"1234567", ' ', "1 234 567"},
		{"", ',', ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, numstr.Format(tc.in, numstr.Thousand, tc.sep), "input %q", tc.in)
	}
}

func TestFormatScientific(t *testing.T) {
	cases := map[string]string{
		"123456789": "1.23456789e8",
		"0.00015":   "1.5e-4",
		"-1500":     "-1.5e3",
		"0":         "0e0",
		"1,000":     "1e3",
		"abc":       "abc", // unchanged
	}
	for in, want := range cases {
		require.Equal(t, want, numstr.Format(in, numstr.Scientific, ','), "input %q", in)
	}
	require.Equal(t, "1_000", numstr.Format("1_000", numstr.Standard, ','))
}

func TestParseStyle(t *testing.T) {
	for _, s := range []numstr.Style{numstr.Standard, numstr.Thousand, numstr.Scientific} {
		got, err := numstr.ParseStyle(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := numstr.ParseStyle("SCI")
	require.NoError(t, err)
	require.Equal(t, numstr.Scientific, got)
	_, err = numstr.ParseStyle("roman")
	require.ErrorIs(t, err, numstr.ErrInvalidFormat)
}
