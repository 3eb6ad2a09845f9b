package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathval/matrix"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want [][]float64
	}{
		{"[1, 2; 3, 4]", [][]float64{{1, 2}, {3, 4}}},
		{"1 2\n3 4", [][]float64{{1, 2}, {3, 4}}},
		{"  [ -1.5 2e3 ; 0,0 ; ]  ", [][]float64{{-1.5, 2000}, {0, 0}}},
		{"[7]", [][]float64{{7}}},
	}
	for _, tc := range cases {
		m, err := matrix.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, m.ToRows(), tc.in)
	}

	empty, err := matrix.Parse("[]")
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestParseErrors(t *testing.T) {
	_, err := matrix.Parse("[1, 2")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
	_, err = matrix.Parse("[1, x]")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
	_, err = matrix.Parse("[1, 2; 3]")
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
	_, err = matrix.Parse("[NaN]")
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestParseRoundTrip feeds the MATLAB export back through Parse.
func TestParseRoundTrip(t *testing.T) {
	m := mustRows(t, [][]float64{{1, -2.5}, {0.125, 4}})
	back, err := matrix.Parse(m.MATLAB())
	require.NoError(t, err)
	require.Equal(t, m.ToRows(), back.ToRows())
}
