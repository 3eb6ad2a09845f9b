// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDenominator is returned when a fraction would get a zero denominator,
	// or when a denominator budget below one is requested.
	ErrInvalidDenominator = errors.New("rational: denominator must be non-zero")

	// ErrInvalidFormat indicates text that is neither a mixed number, a simple
	// fraction, a decimal nor an integer.
	ErrInvalidFormat = errors.New("rational: invalid fraction format")

	// ErrOverflow indicates a result whose terms do not fit in int64.
	ErrOverflow = errors.New("rational: int64 overflow")

	// ErrNotFinite indicates a NaN or ±Inf input to FromFloat.
	ErrNotFinite = errors.New("rational: value is NaN or Inf")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

// Operation tags used in error wrapping.
const (
	opNew       = "New"
	opFromMixed = "FromMixed"
	opFromFloat = "FromFloat"
	opParse     = "Parse"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opNeg       = "Neg"
)

// rationalErrorf wraps err with an operation tag, keeping the sentinel for errors.Is.
func rationalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
