// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// Tensor is a dense row-major N-dimensional array.
// Invariant: len(data) == product(shape).
type Tensor struct {
	data  []float64
	shape []int
}

// volume returns product(shape) or ErrInvalidShape for negative axes or overflow.
func volume(shape []int) (int, error) {
	n := 1
	for axis, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("axis %d has size %d: %w", axis, d, ErrInvalidShape)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("element count overflows: %w", ErrInvalidShape)
		}
		n *= d
	}

	return n, nil
}

// New returns a zero tensor of the given shape. An empty shape is a scalar.
func New(shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(opNew, shape, err)
	}

	return &Tensor{data: make([]float64, n), shape: append([]int(nil), shape...)}, nil
}

// Filled returns a tensor of the given shape with every element set to value.
func Filled(value float64, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}

	return t, nil
}

// FromData copies data into a tensor of the given shape.
// len(data) must equal product(shape) (ErrShapeMismatch).
func FromData(data []float64, shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(opFromData, shape, err)
	}
	if len(data) != n {
		return nil, tensorErrorf(opFromData, shape, fmt.Errorf("%d values for %d elements: %w", len(data), n, ErrShapeMismatch))
	}

	return &Tensor{data: append([]float64(nil), data...), shape: append([]int(nil), shape...)}, nil
}

// Shape returns a copy of the axis sizes.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.shape) }

// Size returns the number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// Data returns a copy of the flat row-major buffer.
func (t *Tensor) Data() []float64 { return append([]float64(nil), t.data...) }

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{data: t.Data(), shape: t.Shape()}
}

// checkInvariant panics when the buffer no longer matches the shape.
func (t *Tensor) checkInvariant() {
	n, err := volume(t.shape)
	if err != nil || n != len(t.data) {
		panic(fmt.Sprintf("tensor: internal: buffer length %d does not match shape %v", len(t.data), t.shape))
	}
}

// FlatIndex maps a multi-index to its row-major offset.
// Strides are built from the last axis to the first.
//
// Errors:
//   - ErrRankMismatch when len(indices) != Rank().
//   - ErrOutOfRange when any index is outside [0, shape[axis]).
func (t *Tensor) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, tensorErrorf(opFlatIndex, t.shape, fmt.Errorf("%d indices: %w", len(indices), ErrRankMismatch))
	}
	flat, stride := 0, 1
	for axis := len(t.shape) - 1; axis >= 0; axis-- {
		idx := indices[axis]
		if idx < 0 || idx >= t.shape[axis] {
			return 0, tensorErrorf(opFlatIndex, t.shape, fmt.Errorf("axis %d index %d: %w", axis, idx, ErrOutOfRange))
		}
		flat += idx * stride
		stride *= t.shape[axis]
	}

	return flat, nil
}

// MultiIndex is the inverse of FlatIndex: successive modulo/divide from the last axis.
func (t *Tensor) MultiIndex(flat int) ([]int, error) {
	if flat < 0 || flat >= len(t.data) {
		return nil, tensorErrorf(opMultiIdx, t.shape, fmt.Errorf("offset %d: %w", flat, ErrOutOfRange))
	}
	out := make([]int, len(t.shape))
	for axis := len(t.shape) - 1; axis >= 0; axis-- {
		out[axis] = flat % t.shape[axis]
		flat /= t.shape[axis]
	}

	return out, nil
}

// At returns the element at indices.
func (t *Tensor) At(indices ...int) (float64, error) {
	i, err := t.FlatIndex(indices...)
	if err != nil {
		return 0, err
	}

	return t.data[i], nil
}

// Set writes value at indices.
func (t *Tensor) Set(value float64, indices ...int) error {
	i, err := t.FlatIndex(indices...)
	if err != nil {
		return err
	}
	t.data[i] = value

	return nil
}
