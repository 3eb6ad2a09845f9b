// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape indicates a negative axis size or a shape whose element
	// count overflows int.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch indicates data or a target shape whose element count
	// differs from the tensor's.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrRankMismatch indicates an index tuple whose length differs from the rank.
	ErrRankMismatch = errors.New("tensor: index count does not match rank")

	// ErrOutOfRange indicates an index, flat offset or axis outside its bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDuplicateAxis indicates the same axis fixed twice in Slice2D.
	ErrDuplicateAxis = errors.New("tensor: axis fixed more than once")

	// ErrTooFewFreeAxes is returned by Slice2D when fewer than two axes remain free.
	ErrTooFewFreeAxes = errors.New("tensor: fewer than two free axes")

	// ErrRankTooLow is returned by operations that need rank >= 2.
	ErrRankTooLow = errors.New("tensor: rank below 2")

	// ErrEmpty is returned by Min/Max on a tensor with no elements.
	ErrEmpty = errors.New("tensor: empty tensor")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opFromData  = "FromData"
	opFlatIndex = "FlatIndex"
	opMultiIdx  = "MultiIndex"
	opSlice2D   = "Slice2D"
	opReshape   = "Reshape"
	opTranspose = "Transpose"
	opMin       = "Min"
	opMax       = "Max"
)

// tensorErrorf wraps err with the operation tag and the shape it ran against.
func tensorErrorf(op string, shape []int, err error) error {
	return fmt.Errorf("Tensor.%s%v: %w", op, shape, err)
}
