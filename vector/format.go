// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Notation selects the delimiters used by Format.
type Notation int

const (
	Row           Notation = iota // [1, 2, 3]
	Column                        // one bracketed component per line
	AngleBrackets                 // ⟨1, 2, 3⟩
	Parentheses                   // (1, 2, 3)
	UnitVector                    // 1î + 2ĵ + 3k̂
)

// Left is the opening delimiter; empty for UnitVector.
func (n Notation) Left() string {
	switch n {
	case Row, Column:
		return "["
	case AngleBrackets:
		return "⟨"
	case Parentheses:
		return "("
	default:
		return ""
	}
}

// Right is the closing delimiter; empty for UnitVector.
func (n Notation) Right() string {
	switch n {
	case Row, Column:
		return "]"
	case AngleBrackets:
		return "⟩"
	case Parentheses:
		return ")"
	default:
		return ""
	}
}

// IsVertical reports whether components are laid out one per line.
func (n Notation) IsVertical() bool { return n == Column }

var basisSymbols = [...]string{"î", "ĵ", "k̂", "ê₄", "ê₅", "ê₆"}

// formatNumber prints integers without decimals and other values with up to six.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strings.TrimRight(strconv.FormatFloat(v, 'f', 6, 64), "0")

	return strings.TrimSuffix(s, ".")
}

// UnitNotation renders v as a sum over basis vectors, e.g. "3î + 4ĵ - 2k̂".
// Components within ZeroTolerance of zero are skipped and unit coefficients
// are elided; the zero vector renders as "0". Dimensions beyond six use "eₙ".
func (v Vector) UnitNotation() string {
	var b strings.Builder
	for i, x := range v.c {
		if math.Abs(x) < ZeroTolerance {
			continue
		}
		sym := "eₙ"
		if i < len(basisSymbols) {
			sym = basisSymbols[i]
		}

		mag := ""
		if math.Abs(math.Abs(x)-1) >= ZeroTolerance {
			mag = formatNumber(math.Abs(x))
		}

		switch {
		case b.Len() == 0 && x < 0:
			b.WriteString("-")
		case b.Len() > 0 && x < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(mag)
		b.WriteString(sym)
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// LaTeX renders a pmatrix; column vectors separate entries with \\.
func (v Vector) LaTeX(column bool) string {
	sep := " & "
	if column {
		sep = ` \\ `
	}

	return `\begin{pmatrix} ` + strings.Join(v.formatted(), sep) + ` \end{pmatrix}`
}

func (v Vector) formatted() []string {
	out := make([]string, len(v.c))
	for i, x := range v.c {
		out[i] = formatNumber(x)
	}

	return out
}

// String is the Row notation.
func (v Vector) String() string { return v.Format(Row) }

// Format renders v in notation n.
func (v Vector) Format(n Notation) string {
	switch n {
	case UnitVector:
		return v.UnitNotation()
	case Column:
		lines := make([]string, len(v.c))
		for i, s := range v.formatted() {
			lines[i] = n.Left() + s + n.Right()
		}
		return strings.Join(lines, "\n")
	default:
		return n.Left() + strings.Join(v.formatted(), ", ") + n.Right()
	}
}

// Parse reads a comma-separated component list, optionally wrapped in one
// pair of [], (), or ⟨⟩ delimiters: "[1, 2, 3]", "⟨0.5, -1⟩", "4, 5".
func Parse(input string) (Vector, error) {
	s := strings.TrimSpace(input)
	for _, n := range []Notation{Row, AngleBrackets, Parentheses} {
		if inner, ok := strings.CutPrefix(s, n.Left()); ok {
			if inner, ok = strings.CutSuffix(inner, n.Right()); ok {
				s = inner
				break
			}
			return Vector{}, fmt.Errorf("Parse(%q): unbalanced %s: %w", input, n.Left(), ErrInvalidFormat)
		}
	}
	if strings.TrimSpace(s) == "" {
		return Vector{}, fmt.Errorf("Parse(%q): %w", input, ErrInvalidFormat)
	}

	parts := strings.Split(s, ",")
	c := make([]float64, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return Vector{}, fmt.Errorf("Parse(%q): component %d: %w", input, i, ErrInvalidFormat)
		}
		c[i] = x
	}

	return Vector{c: c}, nil
}
