// SPDX-License-Identifier: MIT

package units

import "errors"

var (
	// ErrIncompatible is returned when converting across categories.
	ErrIncompatible = errors.New("units: incompatible categories")

	// ErrInvalidFormat indicates text that is not a number with a known unit.
	ErrInvalidFormat = errors.New("units: invalid quantity format")

	// ErrInvalidUnit indicates a unit definition with an empty symbol or a
	// non-positive or non-finite scale or offset.
	ErrInvalidUnit = errors.New("units: invalid unit definition")

	// ErrDuplicateSymbol is returned when a registry would hold two units with the same symbol.
	ErrDuplicateSymbol = errors.New("units: duplicate unit symbol")

	// ErrUnknownCategory indicates a category name ParseCategory does not know.
	ErrUnknownCategory = errors.New("units: unknown category")
)
