// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and export.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot magnitude below which Determinant treats a
	// matrix as singular.
	DefaultEpsilon = 1e-10

	// DefaultPrecision is the number of fractional digits used by exports
	// before trailing zeros are trimmed.
	DefaultPrecision = 6

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// maxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	maxPrecision = 17
)

// Panic messages for invalid option parameters.
const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite and >= 0"
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be in [0,17]"
)

// Option mutates Options during construction.
type Option func(*Options)

// Options is the resolved configuration snapshot carried by a Dense.
// Fields are unexported; use the WithX setters.
type Options struct {
	eps            float64 // DefaultEpsilon
	precision      int     // DefaultPrecision
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// Precision reports the export digit count.
func (o Options) Precision() int { return o.precision }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the singularity threshold used by Determinant.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrecision sets how many fractional digits exports print before trimming.
// Panics when digits is outside [0,17].
func WithPrecision(digits int) Option {
	if digits < 0 || digits > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
//
// Notes:
//   - The flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		precision:      DefaultPrecision,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
