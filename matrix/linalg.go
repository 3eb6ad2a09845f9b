// SPDX-License-Identifier: MIT
// Package matrix: scalar and structural kernels on Dense.
//
// Purpose:
//   - Square-only scalars (Trace, Determinant) that fail with ErrNonSquare.
//   - Shape-preserving/structural kernels (Transpose, Add, Sub, Mul, Scale).
//
// Notes:
//   - All kernels allocate a fresh result; operands are never mutated.
//   - Fixed loop orders (i→j→k) keep results bit-for-bit reproducible.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opPreview     = "Preview"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Trace returns the sum of the main diagonal.
//
// Errors:
//   - ErrNonSquare when rows != cols.
//
// Complexity: O(n).
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Determinant computes det(m) for a square matrix.
// MAIN DESCRIPTION:
//   - Exact closed forms for small orders; partial-pivot elimination beyond.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: n=0 → 1; n=1 → a; n=2 → ad−bc; n=3 → cofactor expansion on row 0.
//   - Stage 3: n>3 → determinantLU on a private copy.
//
// Errors:
//   - ErrNonSquare when rows != cols.
//
// Complexity:
//   - O(1) for n≤3, O(n³) time and O(n²) space otherwise.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d := m.data
	switch m.r {
	case 0:
		return 1, nil
	case 1:
		return d[0], nil
	case 2:
		return d[0]*d[3] - d[1]*d[2], nil
	case 3:
		a, b, c := d[0], d[1], d[2]
		e, f, g := d[3], d[4], d[5]
		h, i, k := d[6], d[7], d[8]

		return a*(f*k-g*i) - b*(e*k-g*h) + c*(e*i-f*h), nil
	default:
		return determinantLU(m.r, d, m.opts.eps), nil
	}
}

// determinantLU row-reduces a copy of the n×n buffer with partial pivoting.
// Implementation:
//   - Stage 1: for each column k pick the row in [k,n) with the largest |a[i][k]|.
//   - Stage 2: if that magnitude is below eps the matrix is singular → 0.
//   - Stage 3: swap rows (negating the sign), fold the pivot into det, eliminate below.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func determinantLU(n int, src []float64, eps float64) float64 {
	lu := make([]float64, len(src))
	copy(lu, src)

	det := 1.0
	var i, j, k, pivotRow int
	var maxAbs, factor float64
	for k = 0; k < n; k++ {
		pivotRow = k
		maxAbs = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > maxAbs {
				maxAbs = v
				pivotRow = i
			}
		}
		if maxAbs < eps {
			return 0
		}
		if pivotRow != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[pivotRow*n+j] = lu[pivotRow*n+j], lu[k*n+j]
			}
			det = -det
		}
		det *= lu[k*n+k]

		for i = k + 1; i < n; i++ {
			factor = lu[i*n+k] / lu[k*n+k]
			for j = k; j < n; j++ {
				lu[i*n+j] -= factor * lu[k*n+j]
			}
		}
	}

	return det
}

// FrobeniusNorm returns sqrt(Σ a_ij²). An empty matrix has norm 0.
func (m *Dense) FrobeniusNorm() float64 {
	var sum float64
	for _, v := range m.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// Transpose returns a new cols×rows matrix with out[j][i] = m[i][j].
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data)), opts: m.opts}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and allocation.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data)), opts: a.opts}
	for k := range a.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add returns a + b. Shapes must match (ErrDimensionMismatch).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b. Shapes must match (ErrDimensionMismatch).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a×b.
// MAIN DESCRIPTION:
//   - Classic triple loop in i→k→j order so the inner loop walks both b and out row-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.r, a.c, b.c
	out := &Dense{r: r, c: c, data: make([]float64, r*c), opts: a.opts}
	var aik float64
	for i := 0; i < r; i++ {
		for k := 0; k < n; k++ {
			aik = a.data[i*n+k]
			for j := 0; j < c; j++ {
				out.data[i*c+j] += aik * b.data[k*c+j]
			}
		}
	}

	return out, nil
}

// Scale returns alpha*m.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if m.opts.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out := m.Clone()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}

// Preview evaluates op and renders "label(A) = value" using the export precision.
// Transpose renders its result in MATLAB syntax.
func (m *Dense) Preview(op Operation) (string, error) {
	switch op {
	case OpDeterminant:
		det, err := m.Determinant()
		if err != nil {
			return "", matrixErrorf(opPreview, err)
		}

		return fmt.Sprintf("det(A) = %s", formatNumber(det, m.opts.precision)), nil
	case OpTrace:
		tr, err := m.Trace()
		if err != nil {
			return "", matrixErrorf(opPreview, err)
		}

		return fmt.Sprintf("tr(A) = %s", formatNumber(tr, m.opts.precision)), nil
	case OpTranspose:
		return "A^T = " + m.Transpose().MATLAB(), nil
	case OpFrobeniusNorm:
		return fmt.Sprintf("‖A‖F = %s", formatNumber(m.FrobeniusNorm(), m.opts.precision)), nil
	default:
		return "", matrixErrorf(opPreview, fmt.Errorf("operation %d: %w", int(op), ErrUnknownOperation))
	}
}
