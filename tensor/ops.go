// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// Reshape reinterprets the buffer under a new shape with the same element count.
// The tensor is unchanged on error.
func (t *Tensor) Reshape(shape ...int) error {
	n, err := volume(shape)
	if err != nil {
		return tensorErrorf(opReshape, t.shape, err)
	}
	if n != len(t.data) {
		return tensorErrorf(opReshape, t.shape, fmt.Errorf("to %v: %w", shape, ErrShapeMismatch))
	}
	t.shape = append([]int(nil), shape...)

	return nil
}

// Transpose returns a new tensor with the last two axes swapped. Every element
// is moved to its flat position under the swapped shape.
func (t *Tensor) Transpose() (*Tensor, error) {
	t.checkInvariant()
	n := len(t.shape)
	if n < 2 {
		return nil, tensorErrorf(opTranspose, t.shape, ErrRankTooLow)
	}

	out := &Tensor{data: make([]float64, len(t.data)), shape: t.Shape()}
	out.shape[n-2], out.shape[n-1] = out.shape[n-1], out.shape[n-2]
	for flat, v := range t.data {
		idx, err := t.MultiIndex(flat)
		if err != nil {
			return nil, err
		}
		idx[n-2], idx[n-1] = idx[n-1], idx[n-2]
		dst, err := out.FlatIndex(idx...)
		if err != nil {
			return nil, err
		}
		out.data[dst] = v
	}

	return out, nil
}

// Sum returns the sum of all elements (0 for an empty tensor).
func (t *Tensor) Sum() float64 {
	var s float64
	for _, v := range t.data {
		s += v
	}

	return s
}

// Mean returns Sum()/Size(), or 0 for an empty tensor.
func (t *Tensor) Mean() float64 {
	if len(t.data) == 0 {
		return 0
	}

	return t.Sum() / float64(len(t.data))
}

// Min returns the smallest element or ErrEmpty.
func (t *Tensor) Min() (float64, error) {
	if len(t.data) == 0 {
		return 0, tensorErrorf(opMin, t.shape, ErrEmpty)
	}
	m := t.data[0]
	for _, v := range t.data[1:] {
		m = math.Min(m, v)
	}

	return m, nil
}

// Max returns the largest element or ErrEmpty.
func (t *Tensor) Max() (float64, error) {
	if len(t.data) == 0 {
		return 0, tensorErrorf(opMax, t.shape, ErrEmpty)
	}
	m := t.data[0]
	for _, v := range t.data[1:] {
		m = math.Max(m, v)
	}

	return m, nil
}

// FrobeniusNorm returns sqrt(Σ x²).
func (t *Tensor) FrobeniusNorm() float64 {
	var s float64
	for _, v := range t.data {
		s += v * v
	}

	return math.Sqrt(s)
}
