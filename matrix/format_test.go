package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/mathval/matrix"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestExportsSmall(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.Equal(t, "[1, 2; 3, 4]", m.MATLAB())
	require.Equal(t, "np.array([[1, 2], [3, 4]])", m.NumPy())
	require.Equal(t, "{{1, 2}, {3, 4}}", m.Mathematica())
	require.Equal(t, "\\begin{pmatrix}\n1 & 2 \\\\\n3 & 4\n\\end{pmatrix}", m.LaTeX())

	out, err := m.Export(matrix.TargetNumPy)
	require.NoError(t, err)
	require.Equal(t, m.NumPy(), out)
	_, err = m.Export(matrix.Target(9))
	require.ErrorIs(t, err, matrix.ErrUnknownTarget)
}

// TestExportPrecision covers trailing-zero trimming and the precision option.
func TestExportPrecision(t *testing.T) {
	rows := [][]float64{{0.75, 1.0 / 3.0, -0.0000001, 2.0000001}}

	require.Equal(t, "[0.75, 0.333333, 0, 2]", mustRows(t, rows).MATLAB())
	require.Equal(t, "[0.75, 0.33, 0, 2]", mustRows(t, rows, matrix.WithPrecision(2)).MATLAB())
	require.Equal(t, "[1, 0, 0, 2]", mustRows(t, rows, matrix.WithPrecision(0)).MATLAB())
}

func TestFormatEmpty(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, "()", m.Format(matrix.Parentheses))
	require.Equal(t, "[]", m.MATLAB())
	require.Equal(t, "\\begin{pmatrix}\n\\end{pmatrix}", m.LaTeX())
}

func TestTargets(t *testing.T) {
	for _, tg := range []matrix.Target{matrix.TargetLaTeX, matrix.TargetMATLAB, matrix.TargetNumPy, matrix.TargetMathematica} {
		got, err := matrix.ParseTarget(tg.String())
		require.NoError(t, err)
		require.Equal(t, tg, got)
	}
	got, err := matrix.ParseTarget("octave")
	require.NoError(t, err)
	require.Equal(t, matrix.TargetMATLAB, got)
	_, err = matrix.ParseTarget("excel")
	require.ErrorIs(t, err, matrix.ErrUnknownTarget)
}

func TestParseOperation(t *testing.T) {
	for _, op := range []matrix.Operation{matrix.OpDeterminant, matrix.OpTrace, matrix.OpTranspose, matrix.OpFrobeniusNorm} {
		got, err := matrix.ParseOperation(op.Label())
		require.NoError(t, err)
		require.Equal(t, op, got)
	}
	got, err := matrix.ParseOperation("trace")
	require.NoError(t, err)
	require.Equal(t, matrix.OpTrace, got)
	_, err = matrix.ParseOperation("inverse")
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
}

func TestNotationDelimiters(t *testing.T) {
	require.Equal(t, "[", matrix.Brackets.Left())
	require.Equal(t, "]", matrix.Brackets.Right())
	require.Equal(t, "(", matrix.Parentheses.Left())
	require.Equal(t, "|", matrix.Bars.Left())
	require.Equal(t, "‖", matrix.DoubleBars.Right())
}

// TestExportGolden locks every notation and export target for one matrix.
func TestExportGolden(t *testing.T) {
	m := mustRows(t, [][]float64{{1, -2.5, 0.125}, {10, 4, 1.0 / 3.0}})

	var b strings.Builder
	for _, n := range []matrix.Notation{matrix.Brackets, matrix.Parentheses, matrix.Bars, matrix.DoubleBars} {
		fmt.Fprintf(&b, "%s:\n%s\n", n, m.Format(n))
	}
	for _, tg := range []matrix.Target{matrix.TargetLaTeX, matrix.TargetMATLAB, matrix.TargetNumPy, matrix.TargetMathematica} {
		out, err := m.Export(tg)
		require.NoError(t, err)
		fmt.Fprintf(&b, "%s:\n%s\n", tg, out)
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "matrix_exports", []byte(b.String()))
}
