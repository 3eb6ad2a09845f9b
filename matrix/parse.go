// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads MATLAB/Octave matrix literals such as "[1, 2; 3, 4]" or "1 2\n3 4".
// Rows are separated by ';' or newlines and cells by commas or whitespace; the
// outer brackets are optional but must be balanced. Empty rows are skipped, so
// "[]" yields a 0×0 matrix.
//
// Errors:
//   - ErrInvalidFormat for unbalanced brackets or a cell that is not a number.
//   - ErrNonRectangular when rows differ in length.
//   - ErrNaNInf for NaN/Inf cells when validation is on.
func Parse(text string, opts ...Option) (*Dense, error) {
	s := strings.TrimSpace(text)
	hasOpen, hasClose := strings.HasPrefix(s, "["), strings.HasSuffix(s, "]")
	if hasOpen != hasClose {
		return nil, fmt.Errorf("Parse(%q): unbalanced brackets: %w", text, ErrInvalidFormat)
	}
	if hasOpen {
		s = s[1 : len(s)-1]
	}

	var rows [][]float64
	for _, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("Parse(%q): cell %q: %w", text, f, ErrInvalidFormat)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return FromRows(rows, opts...)
}
