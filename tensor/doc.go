// SPDX-License-Identifier: MIT

// Package tensor provides a dense N-dimensional array of float64 stored as a
// flat row-major buffer.
//
// The flat offset of an index (i₀, …, iₙ₋₁) is Σ iₖ·strideₖ where the stride of
// the last axis is 1 and every earlier stride is the product of the sizes of
// all later axes. A Tensor always satisfies len(data) == product(shape); a
// rank-0 tensor holds exactly one scalar.
//
// Out-of-range indices, wrong index counts and incompatible reshapes are
// reported as errors. A buffer whose length has drifted from its shape can only
// arise from a bug inside this package and panics.
//
// Slice2D extracts a 2-D view (materialized as a copy) by fixing some axes and
// taking the last two free axes as rows and columns; Slice.Dense bridges the
// result into the matrix package.
package tensor
