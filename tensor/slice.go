// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/mathval/matrix"
)

// Fixed pins one axis to an index for Slice2D.
type Fixed struct {
	Axis  int
	Index int
}

// Slice is a materialized 2-D cut through a tensor.
// Data is row-major with len(Data) == Rows*Cols.
type Slice struct {
	Rows, Cols int
	RowAxis    int // tensor axis that became rows
	ColAxis    int // tensor axis that became columns
	Data       []float64
}

// Slice2D holds the given axes fixed and materializes the last two free axes
// as a rows×cols buffer, reading row by row then column by column.
//
// Errors:
//   - ErrRankTooLow for rank < 2.
//   - ErrOutOfRange for a fixed axis or index outside the shape.
//   - ErrDuplicateAxis when an axis is fixed twice.
//   - ErrTooFewFreeAxes when fewer than two axes stay free.
func (t *Tensor) Slice2D(fixed ...Fixed) (Slice, error) {
	t.checkInvariant()
	rank := len(t.shape)
	if rank < 2 {
		return Slice{}, tensorErrorf(opSlice2D, t.shape, ErrRankTooLow)
	}

	idx := make([]int, rank)
	pinned := make([]bool, rank)
	for _, f := range fixed {
		if f.Axis < 0 || f.Axis >= rank {
			return Slice{}, tensorErrorf(opSlice2D, t.shape, fmt.Errorf("axis %d: %w", f.Axis, ErrOutOfRange))
		}
		if pinned[f.Axis] {
			return Slice{}, tensorErrorf(opSlice2D, t.shape, fmt.Errorf("axis %d: %w", f.Axis, ErrDuplicateAxis))
		}
		if f.Index < 0 || f.Index >= t.shape[f.Axis] {
			return Slice{}, tensorErrorf(opSlice2D, t.shape, fmt.Errorf("axis %d index %d: %w", f.Axis, f.Index, ErrOutOfRange))
		}
		pinned[f.Axis] = true
		idx[f.Axis] = f.Index
	}

	rowAxis, colAxis := -1, -1
	for axis := rank - 1; axis >= 0 && rowAxis < 0; axis-- {
		if pinned[axis] {
			continue
		}
		if colAxis < 0 {
			colAxis = axis
		} else {
			rowAxis = axis
		}
	}
	if rowAxis < 0 {
		return Slice{}, tensorErrorf(opSlice2D, t.shape, ErrTooFewFreeAxes)
	}

	rows, cols := t.shape[rowAxis], t.shape[colAxis]
	out := Slice{Rows: rows, Cols: cols, RowAxis: rowAxis, ColAxis: colAxis, Data: make([]float64, 0, rows*cols)}
	for r := 0; r < rows; r++ {
		idx[rowAxis] = r
		for c := 0; c < cols; c++ {
			idx[colAxis] = c
			v, err := t.At(idx...)
			if err != nil {
				return Slice{}, err
			}
			out.Data = append(out.Data, v)
		}
	}

	return out, nil
}

// At returns the slice element at (row, col).
func (s Slice) At(row, col int) (float64, error) {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return 0, fmt.Errorf("Slice.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return s.Data[row*s.Cols+col], nil
}

// Dense copies the slice into a matrix.Dense.
func (s Slice) Dense(opts ...matrix.Option) (*matrix.Dense, error) {
	return matrix.FromFlat(s.Rows, s.Cols, s.Data, opts...)
}

// FromDense converts a matrix into a rank-2 tensor.
func FromDense(m *matrix.Dense) (*Tensor, error) {
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		data = append(data, row...)
	}

	return FromData(data, r, c)
}
