// SPDX-License-Identifier: MIT

// Package units converts physical quantities between units of one category.
//
// Every unit carries a scale to its category's base unit and an optional offset
// (used by temperature scales):
//
//	base  = (value + offset) * scale
//	value = base / scale - offset
//
// Units are grouped in an immutable, ordered Registry. The order matters for
// Parse, which tries units one by one, and for the bare-number fallback, which
// tags the number with the first unit. Built-in registries cover length, mass,
// time, temperature and data sizes; further tables can be loaded from YAML.
package units
