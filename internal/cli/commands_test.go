// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathval/angle"
	"github.com/katalvlaran/mathval/matrix"
	"github.com/katalvlaran/mathval/numstr"
	"github.com/katalvlaran/mathval/rational"
	"github.com/katalvlaran/mathval/tensor"
	"github.com/katalvlaran/mathval/units"
	"github.com/katalvlaran/mathval/vector"
)

func TestFractionCommand(t *testing.T) {
	out, _, err := execute(t, "fraction", "2 3/4")
	require.NoError(t, err)
	assert.Equal(t, "fraction  11/4\n"+
		"mixed     2 3/4\n"+
		"decimal   2.7500\n"+
		"latex     \\frac{11}{4}\n", out)

	out, _, err = execute(t, "fraction", "1/2", "+", "1/3")
	require.NoError(t, err)
	assert.Contains(t, out, "fraction  5/6\n")
	assert.Contains(t, out, "decimal   0.8333\n")

	out, _, err = execute(t, "fraction", "3/4", "x", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "mixed     1 1/2\n")
}

func TestFractionApproxUsesConfig(t *testing.T) {
	cfg := writeConfig(t, "max_denominator = 1000\nprecision = 2\n")
	out, _, err := execute(t, "--config", cfg, "fraction", "--approx", "3.14159265")
	require.NoError(t, err)
	assert.Equal(t, "fraction  355/113\n"+
		"mixed     3 16/113\n"+
		"decimal   3.14\n"+
		"latex     \\frac{355}{113}\n", out)
}

func TestFractionErrors(t *testing.T) {
	_, _, err := execute(t, "fraction", "1/0")
	require.ErrorIs(t, err, rational.ErrInvalidFormat)
	_, _, err = execute(t, "fraction", "1/2", "/", "0")
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
	_, _, err = execute(t, "fraction", "1/2", "%", "1/3")
	require.ErrorContains(t, err, "unknown operator")
	_, _, err = execute(t, "fraction", "1/2", "+")
	require.ErrorContains(t, err, "expected 1 or 3 arguments")
}

func TestAngleCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"angle", "180", "--to", "rad"}, "3.1416 rad\n"},
		{[]string{"angle", "45°30'", "--from", "dms"}, "45.5000°\n"},
		{[]string{"angle", "45.5", "--to", "dms"}, "45°30'\n"},
		{[]string{"angle", "370", "--normalize", "360"}, "10.0000°\n"},
		{[]string{"angle", "0.25", "--from", "turns", "--to", "grad", "--precision", "0"}, "100 grad\n"},
	}
	for _, tc := range cases {
		out, _, err := execute(t, tc.args...)
		require.NoError(t, err, "args %v", tc.args)
		assert.Equal(t, tc.want, out, "args %v", tc.args)
	}

	_, _, err := execute(t, "angle", "1", "--from", "parsecs")
	require.ErrorIs(t, err, angle.ErrUnknownUnit)
	_, _, err = execute(t, "angle", "1", "--normalize", "90")
	require.ErrorContains(t, err, "unknown normalization")
	_, _, err = execute(t, "angle", "north")
	require.ErrorIs(t, err, angle.ErrInvalidFormat)
}

func TestIntervalCommand(t *testing.T) {
	out, _, err := execute(t, "interval", "[0, 10)", "--contains", "10")
	require.NoError(t, err)
	assert.Equal(t, "interval  [0, 10)\n"+
		"set       {x | 0 ≤ x < 10}\n"+
		"empty     false\n"+
		"length    10\n"+
		"midpoint  5\n"+
		"contains  false\n", out)

	out, _, err = execute(t, "interval", "[0, 10]", "--intersect", "(5, 20)")
	require.NoError(t, err)
	assert.Contains(t, out, "overlaps  true\n")
	assert.Contains(t, out, "meet      (5, 10]\n")

	out, _, err = execute(t, "interval", "[0, 10]", "--intersect", "[20, 30]")
	require.NoError(t, err)
	assert.Contains(t, out, "meet      ∅\n")

	out, _, err = execute(t, "interval", "(-inf, 5]")
	require.NoError(t, err)
	assert.Contains(t, out, "interval  (-∞, 5]\n")
	assert.Contains(t, out, "length    unbounded\n")
}

func TestUnitCommand(t *testing.T) {
	out, _, err := execute(t, "unit", "5km", "m")
	require.NoError(t, err)
	assert.Equal(t, "5 km = 5000 m\n", out)

	out, _, err = execute(t, "unit", "100 °C", "°F")
	require.NoError(t, err)
	assert.Equal(t, "100 °C = 212 °F\n", out)

	cfg := writeConfig(t, `unit_table = "../../units/testdata/nautical.yaml"`+"\n")
	out, _, err = execute(t, "--config", cfg, "unit", "2nmi", "m")
	require.NoError(t, err)
	assert.Equal(t, "2 nmi = 3704 m\n", out)

	out, _, err = execute(t, "unit", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "kilometer")
	assert.NotContains(t, out, "nautical mile")

	_, _, err = execute(t, "unit", "5kg", "m")
	require.ErrorIs(t, err, units.ErrIncompatible)
	_, _, err = execute(t, "unit", "5km", "parsec")
	require.ErrorIs(t, err, units.ErrInvalidFormat)
	_, _, err = execute(t, "unit", "5km")
	require.Error(t, err)
}

func TestVectorCommand(t *testing.T) {
	out, _, err := execute(t, "vector", "[3, 4]")
	require.NoError(t, err)
	assert.Equal(t, "vector    [3, 4]\n"+
		"unit      3î + 4ĵ\n"+
		"norm      5\n"+
		"direction [0.6, 0.8]\n", out)

	out, _, err = execute(t, "vector", "1, 0, 0", "--with", "0, 1, 0")
	require.NoError(t, err)
	assert.Contains(t, out, "dot       0\n")
	assert.Contains(t, out, "cross     [0, 0, 1]\n")
	assert.Contains(t, out, "angle     90°\n")
	assert.Contains(t, out, "project   [0, 0, 0]\n")

	out, _, err = execute(t, "vector", "[0, 0]")
	require.NoError(t, err)
	assert.NotContains(t, out, "direction") // zero vector has none

	_, _, err = execute(t, "vector", "[1, 2]", "--with", "[1, 2, 3]")
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestMatrixCommand(t *testing.T) {
	out, _, err := execute(t, "matrix", "[1, 2; 3, 4]", "--op", "det", "--op", "tr")
	require.NoError(t, err)
	assert.Equal(t, "[1  2]\n[3  4]\ndet(A) = -2\ntr(A) = 5\n", out)

	out, _, err = execute(t, "matrix", "1 2; 3 4", "--export", "numpy", "--notation", "bars")
	require.NoError(t, err)
	assert.Equal(t, "|1  2|\n|3  4|\nnp.array([[1, 2], [3, 4]])\n", out)

	cfg := writeConfig(t, "matrix_digits = 2\n")
	out, _, err = execute(t, "--config", cfg, "matrix", "[1, 2]", "--export", "matlab")
	require.NoError(t, err)
	assert.Contains(t, out, "[1, 2]\n")

	_, _, err = execute(t, "matrix", "[1, 2]", "--export", "excel")
	require.ErrorIs(t, err, matrix.ErrUnknownTarget)
	_, _, err = execute(t, "matrix", "[1, 2]", "--op", "inverse")
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
	_, _, err = execute(t, "matrix", "[1, 2, 3]", "--op", "det")
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = execute(t, "matrix", "[1, 2]", "--notation", "braces")
	require.ErrorContains(t, err, "unknown notation")
}

func TestTensorCommand(t *testing.T) {
	out, _, err := execute(t, "tensor", "--shape", "2,3,4", "--fix", "0=1")
	require.NoError(t, err)
	assert.Contains(t, out, "shape     (2 × 3 × 4)\n")
	assert.Contains(t, out, "sum       276\n")
	assert.Contains(t, out, "slice     axes 1×2\n")
	assert.Contains(t, out, "[12  13  14  15]\n[16  17  18  19]\n[20  21  22  23]\n")

	out, _, err = execute(t, "tensor", "--shape", "2,2", "--data", "1,2,3,4", "--transpose")
	require.NoError(t, err)
	assert.Equal(t, "shape     (2 × 2)\n"+
		"tensor    [[1, 3], [2, 4]]\n"+
		"sum       10\n"+
		"norm      5.4772\n", out)

	out, _, err = execute(t, "tensor", "--shape", "2,1,3", "--transpose")
	require.NoError(t, err)
	assert.Contains(t, out, "shape     (2 × 3 × 1)\n") // leading axis stays

	_, _, err = execute(t, "tensor", "--shape", "2,2", "--data", "1,2,3")
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, _, err = execute(t, "tensor", "--shape", "2,3,4", "--fix", "0=5")
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, _, err = execute(t, "tensor", "--fix", "nope")
	require.ErrorContains(t, err, "want axis=index")
}

func TestNumCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"num", "1,000", "--inc", "1"}, "1001\n"},
		{[]string{"num", "95", "--inc", "10", "--max", "100"}, "100\n"},
		{[]string{"num", "0", "--dec", "1"}, "0\n"},
		{[]string{"num", "5", "--min", "10"}, "10\n"},
		{[]string{"num", "1234567.89", "--precision", "decimal:2", "--style", "thousand"}, "1,234,567.89\n"},
		{[]string{"num", "123456789", "--style", "scientific"}, "1.23456789e8\n"},
		{[]string{"num", "1234567", "--style", "thousand", "--group", "'"}, "1'234'567\n"},
		{[]string{"num", "USD 1,234.50", "--paste", "--precision", "decimal:2", "--style", "thousand"}, "1,234.50\n"},
	}
	for _, tc := range cases {
		out, _, err := execute(t, tc.args...)
		require.NoError(t, err, "args %v", tc.args)
		assert.Equal(t, tc.want, out, "args %v", tc.args)
	}

	cfg := writeConfig(t, `decimal_separator = ","`+"\n")
	out, _, err := execute(t, "--config", cfg, "num", "1.234,5 €", "--paste", "--precision", "bigdecimal")
	require.NoError(t, err)
	assert.Equal(t, "1234.5\n", out)
}

func TestNumErrors(t *testing.T) {
	_, _, err := execute(t, "num", "18446744073709551616")
	require.ErrorIs(t, err, numstr.ErrOverflow)
	_, _, err = execute(t, "num", "0.123", "--precision", "decimal:2")
	require.ErrorIs(t, err, numstr.ErrTooManyDecimals)
	_, _, err = execute(t, "num", "5", "--inc", "1", "--dec", "1")
	require.ErrorContains(t, err, "mutually exclusive")
	_, _, err = execute(t, "num", "5", "--precision", "f32")
	require.ErrorIs(t, err, numstr.ErrInvalidFormat)
	_, _, err = execute(t, "num", "5", "--group", ",,")
	require.ErrorContains(t, err, "want one character")
}
