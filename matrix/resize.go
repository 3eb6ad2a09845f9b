// SPDX-License-Identifier: MIT
// Package matrix: in-place resize operations.
//
// InsertRow/InsertCol accept any index in [0, n] (n appends) and zero-fill.
// RemoveRow/RemoveCol accept [0, n) and refuse to leave fewer than one row/column.
// Each call reallocates the backing buffer once.

package matrix

import "fmt"

const (
	ctxInsertRow = "InsertRow"
	ctxInsertCol = "InsertCol"
	ctxRemoveRow = "RemoveRow"
	ctxRemoveCol = "RemoveCol"
)

func resizeErrorf(method string, index int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, index, err)
}

// InsertRow inserts a zero row before row index (index == Rows() appends).
// Complexity: O(r*c).
func (m *Dense) InsertRow(index int) error {
	if index < 0 || index > m.r {
		return resizeErrorf(ctxInsertRow, index, ErrOutOfRange)
	}
	buf := make([]float64, (m.r+1)*m.c)
	copy(buf, m.data[:index*m.c])
	copy(buf[(index+1)*m.c:], m.data[index*m.c:])
	m.data = buf
	m.r++

	return nil
}

// InsertCol inserts a zero column before column index (index == Cols() appends).
// Complexity: O(r*c).
func (m *Dense) InsertCol(index int) error {
	if index < 0 || index > m.c {
		return resizeErrorf(ctxInsertCol, index, ErrOutOfRange)
	}
	nc := m.c + 1
	buf := make([]float64, m.r*nc)
	for i := 0; i < m.r; i++ {
		src := m.data[i*m.c : (i+1)*m.c]
		dst := buf[i*nc : (i+1)*nc]
		copy(dst, src[:index])
		copy(dst[index+1:], src[index:])
	}
	m.data = buf
	m.c = nc

	return nil
}

// RemoveRow deletes row index.
//
// Errors:
//   - ErrOutOfRange for index outside [0, Rows()).
//   - ErrMinimumShape when only one row remains.
func (m *Dense) RemoveRow(index int) error {
	if index < 0 || index >= m.r {
		return resizeErrorf(ctxRemoveRow, index, ErrOutOfRange)
	}
	if m.r <= 1 {
		return resizeErrorf(ctxRemoveRow, index, ErrMinimumShape)
	}
	buf := make([]float64, (m.r-1)*m.c)
	copy(buf, m.data[:index*m.c])
	copy(buf[index*m.c:], m.data[(index+1)*m.c:])
	m.data = buf
	m.r--

	return nil
}

// RemoveCol deletes column index.
//
// Errors:
//   - ErrOutOfRange for index outside [0, Cols()).
//   - ErrMinimumShape when only one column remains.
func (m *Dense) RemoveCol(index int) error {
	if index < 0 || index >= m.c {
		return resizeErrorf(ctxRemoveCol, index, ErrOutOfRange)
	}
	if m.c <= 1 {
		return resizeErrorf(ctxRemoveCol, index, ErrMinimumShape)
	}
	nc := m.c - 1
	buf := make([]float64, m.r*nc)
	for i := 0; i < m.r; i++ {
		src := m.data[i*m.c : (i+1)*m.c]
		dst := buf[i*nc : (i+1)*nc]
		copy(dst, src[:index])
		copy(dst[index:], src[index+1:])
	}
	m.data = buf
	m.c = nc

	return nil
}
