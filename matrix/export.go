// SPDX-License-Identifier: MIT
// Package matrix: text exports.
//
// Numbers are rendered by formatNumber: whole values without a fractional part,
// everything else with Options.Precision digits and trailing zeros trimmed.

package matrix

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	_latexBegin  = "\\begin{pmatrix}\n"
	_latexEnd    = "\\end{pmatrix}"
	_latexCell   = " & "
	_latexRowEnd = " \\\\\n"
	_numpyOpen   = "np.array(["
	_numpyClose  = "])"
	_cellGap     = "  "
)

// formatNumber renders v with at most prec fractional digits, trimming zeros.
func formatNumber(v float64, prec int) string {
	var s string
	if isNonFinite(v) || v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', prec, 64)
		if strings.IndexByte(s, '.') >= 0 {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
	}
	if s == "-0" {
		return "0"
	}

	return s
}

// cells renders every element once, row by row.
func (m *Dense) cells() [][]string {
	out := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = formatNumber(m.data[i*m.c+j], m.opts.precision)
		}
	}

	return out
}

// joinRows joins each row's cells with sep, wraps it in lhs/rhs and joins rows with rowSep.
func (m *Dense) joinRows(sep, lhs, rhs, rowSep string) string {
	rows := m.cells()
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = lhs + strings.Join(row, sep) + rhs
	}

	return strings.Join(parts, rowSep)
}

// LaTeX renders a pmatrix environment:
//
//	\begin{pmatrix}
//	1 & 2 \\
//	3 & 4
//	\end{pmatrix}
func (m *Dense) LaTeX() string {
	var sb strings.Builder
	sb.WriteString(_latexBegin)
	for i, row := range m.cells() {
		sb.WriteString(strings.Join(row, _latexCell))
		if i < m.r-1 {
			sb.WriteString(_latexRowEnd)
		} else {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(_latexEnd)

	return sb.String()
}

// MATLAB renders "[1, 2; 3, 4]".
func (m *Dense) MATLAB() string {
	return "[" + m.joinRows(_fmtSep, "", "", "; ") + "]"
}

// NumPy renders "np.array([[1, 2], [3, 4]])".
func (m *Dense) NumPy() string {
	return _numpyOpen + m.joinRows(_fmtSep, "[", "]", _fmtSep) + _numpyClose
}

// Mathematica renders "{{1, 2}, {3, 4}}".
func (m *Dense) Mathematica() string {
	return "{" + m.joinRows(_fmtSep, "{", "}", _fmtSep) + "}"
}

// Export dispatches to the renderer for target.
func (m *Dense) Export(target Target) (string, error) {
	switch target {
	case TargetLaTeX:
		return m.LaTeX(), nil
	case TargetMATLAB:
		return m.MATLAB(), nil
	case TargetNumPy:
		return m.NumPy(), nil
	case TargetMathematica:
		return m.Mathematica(), nil
	default:
		return "", matrixErrorf("Export", ErrUnknownTarget)
	}
}

// Format renders the matrix for display, one line per row, wrapped in the
// notation's delimiters with cells right-aligned per column:
//
//	[ 1  -2]
//	[10   4]
func (m *Dense) Format(n Notation) string {
	if m.r == 0 || m.c == 0 {
		return n.Left() + n.Right()
	}
	rows := m.cells()
	widths := make([]int, m.c)
	for _, row := range rows {
		for j, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(n.Left())
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(_cellGap)
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString(n.Right())
	}

	return sb.String()
}
