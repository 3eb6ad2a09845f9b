// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxRow     = "Row"      // method tag used in error wrappers
	ctxCol     = "Col"      // method tag used in error wrappers
	ctxFill    = "Filled"   // ctor tag for NewFilled
	ctxFromRow = "FromRows" // ctor tag for FromRows
	ctxFromBuf = "FromFlat" // ctor tag for FromFlat
	ctxFromMat = "FromMatrix"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); 0×0 is a valid (empty) matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts carries the numeric/export policy resolved at construction.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
	opts Options   // eps, precision, validateNaNInf
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and the resolved option set.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve options (defaults + setters).
//
// Behavior highlights:
//   - Zero-sized shapes are accepted; a 0×0 matrix has determinant 1.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
		opts: gatherOptions(opts...),
	}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewFilled returns a rows×cols matrix with every element set to v.
// Under the finite-value policy a non-finite v is rejected with ErrNaNInf.
func NewFilled(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return nil, denseErrorf(ctxFill, rows, cols, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// FromRows copies a slice of rows into a new Dense.
// MAIN DESCRIPTION:
//   - Builds a matrix from nested slices, enforcing that every row has the same length.
//
// Implementation:
//   - Stage 1: derive cols from the first row; reject ragged input.
//   - Stage 2: copy each row into the flat buffer, validating values under the policy.
//
// Errors:
//   - ErrNonRectangular when rows differ in length.
//   - ErrNaNInf for non-finite values when validation is on.
//
// Notes:
//   - An empty outer slice yields a 0×0 matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d values, want %d: %w",
				ctxFromRow, i, len(row), c, ErrNonRectangular)
		}
		for j, v := range row {
			if m.opts.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// FromFlat wraps a copy of a row-major buffer of length rows*cols.
func FromFlat(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: %d values for %dx%d: %w", ctxFromBuf, len(data), rows, cols, ErrBadShape)
	}
	for k, v := range data {
		if m.opts.validateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxFromBuf, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// FromMatrix materializes any Matrix into a new Dense.
func FromMatrix(src Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromMat, err)
	}
	m, err := NewDense(src.Rows(), src.Cols(), opts...)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("Dense.%s: %w", ctxFromMat, err)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// IsSquare reports rows == cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// Options returns the policy snapshot resolved at construction.
func (m *Dense) Options() Options { return m.opts }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
// Unexported to keep the panic-free contract at the public surface.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Never panics on out-of-range; returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// MAIN DESCRIPTION:
//   - Bounds-checked write that honors the finite-value policy.
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrNaNInf when validation is on and v is NaN/±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns the contents as freshly allocated nested slices.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy sharing no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, opts: m.opts}
}

// String implements fmt.Stringer for easy debugging: one "[a, b]" line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
