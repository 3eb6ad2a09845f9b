// SPDX-License-Identifier: MIT

package tensor

import (
	"math"
	"strconv"
	"strings"
)

// displayDigits is the fractional precision used by String.
const displayDigits = 4

// formatNumber prints whole values without decimals and others with up to
// displayDigits fractional digits.
func formatNumber(v float64) string {
	var s string
	if math.IsNaN(v) || math.IsInf(v, 0) || v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', displayDigits, 64)
		if strings.IndexByte(s, '.') >= 0 {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
	}
	if s == "-0" {
		return "0"
	}

	return s
}

// ShapeString renders the shape as "(2 × 3 × 4)".
func (t *Tensor) ShapeString() string {
	parts := make([]string, len(t.shape))
	for i, d := range t.shape {
		parts[i] = strconv.Itoa(d)
	}

	return "(" + strings.Join(parts, " × ") + ")"
}

// String renders the tensor as nested brackets, e.g. "[[1, 2], [3, 4]]".
// A rank-0 tensor renders as its scalar.
func (t *Tensor) String() string {
	t.checkInvariant()
	var sb strings.Builder
	t.writeAxis(&sb, 0, 0)

	return sb.String()
}

// writeAxis renders the block starting at flat offset base along axis.
func (t *Tensor) writeAxis(sb *strings.Builder, axis, base int) {
	if axis == len(t.shape) {
		sb.WriteString(formatNumber(t.data[base]))
		return
	}
	block := 1
	for _, d := range t.shape[axis+1:] {
		block *= d
	}
	sb.WriteByte('[')
	for i := 0; i < t.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		t.writeAxis(sb, axis+1, base+i*block)
	}
	sb.WriteByte(']')
}
