// SPDX-License-Identifier: MIT

package numstr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates text that is not a number for the precision.
	ErrInvalidFormat = errors.New("numstr: invalid number format")

	// ErrOverflow indicates a value above the largest representable one.
	ErrOverflow = errors.New("numstr: value too large")

	// ErrUnderflow indicates a value below the smallest representable one.
	ErrUnderflow = errors.New("numstr: value too small")

	// ErrTooManyDecimals indicates more fractional digits than the precision allows.
	ErrTooManyDecimals = errors.New("numstr: too many decimal places")
)

// RangeKind classifies a RangeError.
type RangeKind uint8

const (
	// Overflow means the value exceeds the maximum.
	Overflow RangeKind = iota
	// Underflow means the value is below the minimum.
	Underflow
	// TooManyDecimals means the fractional part is longer than allowed.
	TooManyDecimals
)

// String returns a short name for the kind.
func (k RangeKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case TooManyDecimals:
		return "too many decimals"
	default:
		return fmt.Sprintf("RangeKind(%d)", uint8(k))
	}
}

// RangeError reports a value outside what a precision can hold.
// Limit is the violated bound as text: the maximum, the minimum or the
// number of allowed decimal places.
type RangeError struct {
	Kind  RangeKind
	Limit string
}

// Error implements error.
func (e *RangeError) Error() string {
	switch e.Kind {
	case Overflow:
		return fmt.Sprintf("numstr: value exceeds maximum %s", e.Limit)
	case Underflow:
		return fmt.Sprintf("numstr: value below minimum %s", e.Limit)
	case TooManyDecimals:
		return fmt.Sprintf("numstr: more than %s decimal places", e.Limit)
	default:
		return fmt.Sprintf("numstr: %s (limit %s)", e.Kind, e.Limit)
	}
}

// Unwrap maps the kind to its sentinel so errors.Is works.
func (e *RangeError) Unwrap() error {
	switch e.Kind {
	case Overflow:
		return ErrOverflow
	case Underflow:
		return ErrUnderflow
	case TooManyDecimals:
		return ErrTooManyDecimals
	default:
		return nil
	}
}

// Operation tags used in error wrapping.
const (
	opValidate = "Validate"
)

// numstrErrorf wraps err with an operation tag and the offending text.
func numstrErrorf(op, text string, err error) error {
	return fmt.Errorf("%s(%q): %w", op, text, err)
}
