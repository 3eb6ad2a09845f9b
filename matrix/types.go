// SPDX-License-Identifier: MIT

// Package matrix: domain-facing enums and the read-only Matrix interface.
// Notation, Target and Operation are closed sets dispatched with exhaustive
// switches; each value knows its own delimiters or label.
package matrix

// Matrix is the read-only view consumed by validators and FromMatrix.
// Dense implements it; other packages may expose their own 2-D buffers through it.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Notation selects the delimiters used by Dense.Format.
type Notation int

const (
	// Brackets renders [a b].
	Brackets Notation = iota
	// Parentheses renders (a b).
	Parentheses
	// Bars renders |a b| (determinant style).
	Bars
	// DoubleBars renders ‖a b‖ (norm style).
	DoubleBars
)

// Left returns the opening delimiter.
func (n Notation) Left() string {
	switch n {
	case Parentheses:
		return "("
	case Bars:
		return "|"
	case DoubleBars:
		return "‖"
	default:
		return "["
	}
}

// Right returns the closing delimiter.
func (n Notation) Right() string {
	switch n {
	case Parentheses:
		return ")"
	case Bars:
		return "|"
	case DoubleBars:
		return "‖"
	default:
		return "]"
	}
}

// String returns the notation name.
func (n Notation) String() string {
	switch n {
	case Parentheses:
		return "parentheses"
	case Bars:
		return "bars"
	case DoubleBars:
		return "double-bars"
	default:
		return "brackets"
	}
}

// Target selects an export dialect for Dense.Export.
type Target int

const (
	// TargetLaTeX is a pmatrix environment.
	TargetLaTeX Target = iota
	// TargetMATLAB is MATLAB/Octave literal syntax.
	TargetMATLAB
	// TargetNumPy is a numpy.array constructor call.
	TargetNumPy
	// TargetMathematica is a nested list literal.
	TargetMathematica
)

// String returns the target name as accepted by ParseTarget.
func (t Target) String() string {
	switch t {
	case TargetLaTeX:
		return "latex"
	case TargetMATLAB:
		return "matlab"
	case TargetNumPy:
		return "numpy"
	case TargetMathematica:
		return "mathematica"
	default:
		return "unknown"
	}
}

// ParseTarget maps a case-sensitive lower-case name to a Target.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "latex":
		return TargetLaTeX, nil
	case "matlab", "octave":
		return TargetMATLAB, nil
	case "numpy":
		return TargetNumPy, nil
	case "mathematica":
		return TargetMathematica, nil
	default:
		return 0, ErrUnknownTarget
	}
}

// Operation is a previewable scalar or structural matrix operation.
type Operation int

const (
	// OpDeterminant previews det(A).
	OpDeterminant Operation = iota
	// OpTrace previews tr(A).
	OpTrace
	// OpTranspose previews Aᵀ.
	OpTranspose
	// OpFrobeniusNorm previews ‖A‖F.
	OpFrobeniusNorm
)

// Label returns the short mathematical label of the operation.
func (op Operation) Label() string {
	switch op {
	case OpDeterminant:
		return "det"
	case OpTrace:
		return "tr"
	case OpTranspose:
		return "T"
	case OpFrobeniusNorm:
		return "‖·‖F"
	default:
		return "?"
	}
}

// ParseOperation accepts the Label or a spelled-out name ("determinant",
// "trace", "transpose", "frobenius").
func ParseOperation(name string) (Operation, error) {
	switch name {
	case "det", "determinant":
		return OpDeterminant, nil
	case "tr", "trace":
		return OpTrace, nil
	case "T", "transpose":
		return OpTranspose, nil
	case "‖·‖F", "frobenius", "norm":
		return OpFrobeniusNorm, nil
	default:
		return 0, ErrUnknownOperation
	}
}
