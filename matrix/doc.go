// SPDX-License-Identifier: MIT

// Package matrix provides a resizable, row-major dense matrix of float64 values
// together with the small set of numeric kernels an editor needs to preview:
// trace, determinant, Frobenius norm and transpose.
//
// The package provides:
//
//   - Dense: a row-major matrix with safe accessors (At/Set return errors instead
//     of panicking) and an optional finite-value policy (NaN/Inf rejection).
//   - Resize operations (InsertRow, InsertCol, RemoveRow, RemoveCol) that insert
//     zero-filled rows/columns at a caller-given index and refuse to shrink below 1×1.
//   - Square-only kernels (Trace, Determinant) that fail with ErrNonSquare instead
//     of returning a meaningless value.
//   - Elementwise and product kernels (Add, Sub, Mul, Scale).
//   - Text exports for LaTeX, MATLAB/Octave, NumPy and Mathematica, plus a
//     delimiter-aware Format for on-screen display and a MATLAB-style Parse.
//
// Determinant:
//
//	Closed forms are used for 0×0 (=1), 1×1, 2×2 and 3×3. Larger matrices are
//	row-reduced with partial pivoting; a pivot column whose largest magnitude is
//	below the configured epsilon (WithEpsilon, default 1e-10) marks the matrix as
//	singular and the determinant is reported as 0.
//
// Configuration is explicit through functional options (WithEpsilon,
// WithPrecision, WithValidateNaNInf, WithNoValidateNaNInf) resolved once at
// construction; there is no package-level mutable state.
//
// Errors are package sentinels (ErrOutOfRange, ErrNonSquare, ...) wrapped with
// method context; match them with errors.Is.
package matrix
