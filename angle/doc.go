// SPDX-License-Identifier: MIT

// Package angle converts, normalises, parses and formats plane angles.
//
// Degrees are the canonical unit: every other Unit converts through them.
// Radians, gradians (400 per turn) and turns are plain scale factors, and the
// degrees-minutes-seconds notation is carried by the DMS type.
//
// Parsing accepts three DMS dialects, tried in order:
//
//	45°30'15"    symbols (also the typographic primes ′ ″)
//	45d30m15s    letters, case-insensitive
//	45 30 15     whitespace separated
//
// Input is NFKC-folded first, so full-width digits and compatibility primes
// parse the same as their ASCII forms.
package angle
