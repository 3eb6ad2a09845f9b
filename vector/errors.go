// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNot3D is returned by operations defined only in three dimensions.
	ErrNot3D = errors.New("vector: operation requires 3 dimensions")

	// ErrZeroMagnitude indicates a direction requested from a near-zero vector.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")

	// ErrOutOfRange indicates a component index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidFormat indicates text Parse cannot read.
	ErrInvalidFormat = errors.New("vector: invalid vector format")
)

// vectorErrorf tags err with the operation and both dimensions.
func vectorErrorf(op string, a, b int, err error) error {
	return fmt.Errorf("Vector.%s(%d, %d): %w", op, a, b, err)
}
