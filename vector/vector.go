// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// ZeroTolerance is the magnitude below which a vector has no direction.
const ZeroTolerance = 1e-10

// Vector is an ordered list of float64 components. Methods never mutate the
// receiver except Set.
type Vector struct {
	c []float64
}

// New copies components into a vector.
func New(components ...float64) Vector {
	c := make([]float64, len(components))
	copy(c, components)

	return Vector{c: c}
}

// Zeros returns the zero vector of dimension n (n < 0 is treated as 0).
func Zeros(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{c: make([]float64, n)}
}

// Dim is the number of components.
func (v Vector) Dim() int { return len(v.c) }

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)

	return out
}

// At returns component i.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.c) {
		return 0, fmt.Errorf("Vector.At(%d) dim=%d: %w", i, len(v.c), ErrOutOfRange)
	}

	return v.c[i], nil
}

// Set overwrites component i in place.
func (v Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.c) {
		return fmt.Errorf("Vector.Set(%d) dim=%d: %w", i, len(v.c), ErrOutOfRange)
	}
	v.c[i] = x

	return nil
}

func (v Vector) comp(i int) float64 {
	if i < len(v.c) {
		return v.c[i]
	}

	return 0
}

// X, Y and Z return the first three components, 0 when absent.
func (v Vector) X() float64 { return v.comp(0) }
func (v Vector) Y() float64 { return v.comp(1) }
func (v Vector) Z() float64 { return v.comp(2) }

// MagnitudeSquared is the sum of squared components.
func (v Vector) MagnitudeSquared() float64 {
	var s float64
	for _, x := range v.c {
		s += x * x
	}

	return s
}

// Magnitude is the Euclidean length.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize returns v / |v|; ErrZeroMagnitude below ZeroTolerance.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if mag < ZeroTolerance {
		return Vector{}, ErrZeroMagnitude
	}

	return v.Scale(1 / mag), nil
}

// IsUnit reports whether |v| is within ZeroTolerance of 1.
func (v Vector) IsUnit() bool {
	return math.Abs(v.Magnitude()-1) < ZeroTolerance
}

// Scale multiplies every component by k.
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.c))
	for i, x := range v.c {
		out[i] = x * k
	}

	return Vector{c: out}
}

// Dot is the inner product.
func (v Vector) Dot(o Vector) (float64, error) {
	if len(v.c) != len(o.c) {
		return 0, vectorErrorf("Dot", len(v.c), len(o.c), ErrDimensionMismatch)
	}
	var s float64
	for i, x := range v.c {
		s += x * o.c[i]
	}

	return s, nil
}

func (v Vector) zip(op string, o Vector, f func(a, b float64) float64) (Vector, error) {
	if len(v.c) != len(o.c) {
		return Vector{}, vectorErrorf(op, len(v.c), len(o.c), ErrDimensionMismatch)
	}
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = f(v.c[i], o.c[i])
	}

	return Vector{c: out}, nil
}

// Add is the component-wise sum.
func (v Vector) Add(o Vector) (Vector, error) {
	return v.zip("Add", o, func(a, b float64) float64 { return a + b })
}

// Sub is the component-wise difference v - o.
func (v Vector) Sub(o Vector) (Vector, error) {
	return v.zip("Sub", o, func(a, b float64) float64 { return a - b })
}

// Cross is the 3-D cross product v × o.
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v.c) != 3 || len(o.c) != 3 {
		return Vector{}, vectorErrorf("Cross", len(v.c), len(o.c), ErrNot3D)
	}

	return New(
		v.Y()*o.Z()-v.Z()*o.Y(),
		v.Z()*o.X()-v.X()*o.Z(),
		v.X()*o.Y()-v.Y()*o.X(),
	), nil
}

// AngleTo is the angle between v and o in radians, in [0, π].
// It fails with ErrZeroMagnitude when either magnitude is below ZeroTolerance,
// however large the other one is. The cosine is clamped to [-1, 1] so rounding
// never yields NaN.
func (v Vector) AngleTo(o Vector) (float64, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return 0, err
	}
	vm, om := v.Magnitude(), o.Magnitude()
	if vm < ZeroTolerance || om < ZeroTolerance {
		return 0, ErrZeroMagnitude
	}

	return math.Acos(math.Max(-1, math.Min(1, dot/(vm*om)))), nil
}

// DirectionAngles returns the angles (radians) between a 3-D vector and the
// x, y and z axes.
func (v Vector) DirectionAngles() (alpha, beta, gamma float64, err error) {
	if len(v.c) != 3 {
		return 0, 0, 0, fmt.Errorf("Vector.DirectionAngles dim=%d: %w", len(v.c), ErrNot3D)
	}
	mag := v.Magnitude()
	if mag < ZeroTolerance {
		return 0, 0, 0, ErrZeroMagnitude
	}

	return math.Acos(v.X() / mag), math.Acos(v.Y() / mag), math.Acos(v.Z() / mag), nil
}

// ProjectOnto is the projection of v onto o: o · (v·o)/(o·o).
func (v Vector) ProjectOnto(o Vector) (Vector, error) {
	ab, err := v.Dot(o)
	if err != nil {
		return Vector{}, err
	}
	bb := o.MagnitudeSquared()
	if bb < ZeroTolerance {
		return Vector{}, ErrZeroMagnitude
	}

	return o.Scale(ab / bb), nil
}
