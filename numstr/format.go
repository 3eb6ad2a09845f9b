// SPDX-License-Identifier: MIT

package numstr

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects how Format renders a number.
type Style uint8

const (
	// Standard leaves the text as typed.
	Standard Style = iota
	// Thousand groups the integer digits in threes.
	Thousand
	// Scientific renders mantissa and exponent, e.g. "1.5e3".
	Scientific
)

// String returns "standard", "thousand" or "scientific".
func (s Style) String() string {
	switch s {
	case Standard:
		return "standard"
	case Thousand:
		return "thousand"
	case Scientific:
		return "scientific"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "":
		return Standard, nil
	case "thousand", "thousands":
		return Thousand, nil
	case "scientific", "sci":
		return Scientific, nil
	}

	return Standard, fmt.Errorf("ParseStyle(%q): %w", name, ErrInvalidFormat)
}

// Format renders text in style. sep is the Thousand group separator.
// Scientific falls back to the input when it is not a number.
func Format(text string, style Style, sep rune) string {
	switch style {
	case Thousand:
		return groupThousands(text, sep)
	case Scientific:
		return scientific(text)
	default:
		return text
	}
}

func groupThousands(text string, sep rune) string {
	intPart, frac, hasFrac := strings.Cut(Clean(text), ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var sb strings.Builder
	sb.WriteString(sign)
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteRune(sep)
		}
		sb.WriteRune(ch)
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}

// scientific prints the shortest mantissa with an unpadded exponent ("1.5e-7").
func scientific(text string) string {
	v, err := strconv.ParseFloat(Clean(text), 64)
	if err != nil {
		return text
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return text
	}

	return mant + "e" + strconv.Itoa(e)
}
