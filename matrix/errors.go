// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with method context)
// and tests check them via errors.Is. User-triggered conditions never panic;
// panics are reserved for invalid option parameters (programmer error).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows/cols,
	// or a flat buffer whose length does not match rows*cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and resize operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonRectangular signals row slices of unequal length in FromRows/Parse.
	ErrNonRectangular = errors.New("matrix: rows have unequal length")

	// ErrMinimumShape is returned when a removal would leave fewer than one row or column.
	ErrMinimumShape = errors.New("matrix: cannot shrink below one row or column")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidFormat is returned by Parse for text that is not a MATLAB-style matrix.
	ErrInvalidFormat = errors.New("matrix: invalid matrix text")

	// ErrUnknownTarget is returned by Export for an unsupported export target.
	ErrUnknownTarget = errors.New("matrix: unknown export target")

	// ErrUnknownOperation is returned by Preview for an unsupported Operation.
	ErrUnknownOperation = errors.New("matrix: unknown operation")
)
