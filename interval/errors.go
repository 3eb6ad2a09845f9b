// SPDX-License-Identifier: MIT

package interval

import "errors"

var (
	// ErrInvalidFormat indicates text that is neither bracket nor set-builder notation.
	ErrInvalidFormat = errors.New("interval: invalid interval format")

	// ErrUnbounded is returned by Length and Midpoint when a side is unbounded.
	ErrUnbounded = errors.New("interval: unbounded interval")

	// ErrEmpty is returned by Intersection when the operands share no point.
	ErrEmpty = errors.New("interval: empty intersection")
)
