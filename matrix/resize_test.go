package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathval/matrix"
	"github.com/stretchr/testify/require"
)

func TestInsertRow(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.InsertRow(1)) // between the two rows
	require.Equal(t, [][]float64{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}, m.ToRows())

	require.NoError(t, m.InsertRow(3)) // index == Rows() appends
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.ErrorIs(t, m.InsertRow(5), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.InsertRow(-1), matrix.ErrOutOfRange)
}

func TestInsertCol(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.InsertCol(0))
	require.Equal(t, [][]float64{{0, 1, 2}, {0, 3, 4}}, m.ToRows())

	require.NoError(t, m.InsertCol(3))
	require.Equal(t, [][]float64{{0, 1, 2, 0}, {0, 3, 4, 0}}, m.ToRows())

	require.ErrorIs(t, m.InsertCol(6), matrix.ErrOutOfRange)
}

func TestRemoveRowCol(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	require.NoError(t, m.RemoveRow(1))
	require.Equal(t, [][]float64{{1, 2, 3}, {7, 8, 9}}, m.ToRows())

	require.NoError(t, m.RemoveCol(1))
	require.Equal(t, [][]float64{{1, 3}, {7, 9}}, m.ToRows())

	require.ErrorIs(t, m.RemoveRow(2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.RemoveCol(-1), matrix.ErrOutOfRange)
}

// TestRemoveRefusesEmpty keeps at least one row and one column.
func TestRemoveRefusesEmpty(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})
	require.ErrorIs(t, m.RemoveRow(0), matrix.ErrMinimumShape)
	require.NoError(t, m.RemoveCol(0))
	require.ErrorIs(t, m.RemoveCol(0), matrix.ErrMinimumShape)
	require.Equal(t, [][]float64{{2}}, m.ToRows())
}
