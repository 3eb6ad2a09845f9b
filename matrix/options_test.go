package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathval/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultPrecision, o.Precision())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestOptionsLastWriterWins applies conflicting setters in order.
func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithNoValidateNaNInf(),
		matrix.WithPrecision(3),
		matrix.WithValidateNaNInf(),
		matrix.WithEpsilon(1e-6),
		matrix.WithPrecision(4),
	)
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, 4, o.Precision())
	require.Equal(t, 1e-6, o.Epsilon())

	m, err := matrix.NewDense(1, 1, matrix.WithPrecision(2))
	require.NoError(t, err)
	require.Equal(t, 2, m.Options().Precision())
	require.Equal(t, 2, m.Clone().Options().Precision()) // policy travels with clones
}

func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithPrecision(-1) })
	require.Panics(t, func() { matrix.WithPrecision(18) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestValidators(t *testing.T) {
	sq := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	wide := mustRows(t, [][]float64{{1, 2, 3}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(wide, wide.Transpose()))
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, wide), matrix.ErrDimensionMismatch)
}
