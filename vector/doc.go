// SPDX-License-Identifier: MIT

// Package vector provides n-dimensional Euclidean vectors over float64.
//
// Operations that are undefined for some inputs return a sentinel error
// instead of a value: mismatched dimensions, a cross product outside 3-D, or a
// direction taken from a (near) zero vector. "Near zero" means a magnitude
// below ZeroTolerance.
package vector
