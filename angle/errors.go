// SPDX-License-Identifier: MIT

package angle

import "errors"

var (
	// ErrInvalidFormat indicates text that no angle dialect accepts.
	ErrInvalidFormat = errors.New("angle: invalid angle format")

	// ErrUnknownUnit indicates a unit name ParseUnit does not know.
	ErrUnknownUnit = errors.New("angle: unknown unit")
)
