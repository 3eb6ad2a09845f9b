// SPDX-License-Identifier: MIT

package numstr

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/unicode/norm"
)

// NormalizePaste turns pasted text into plain digits with a '.' decimal point.
//
// Steps:
//  1. NFKC folding (full-width digits, NBSP, compatibility forms);
//  2. removal of ISO 4217 codes ("USD", "eur") and currency symbols;
//  3. removal of grouping marks: spaces, apostrophes, '_' and whichever of
//     ',' or '.' is not decimalSep;
//  4. decimalSep becomes '.' and U+2212 MINUS SIGN becomes '-'.
//
// The result is not validated; pass it to Validate.
func NormalizePaste(text string, decimalSep rune) string {
	s := stripISOCodes(norm.NFKC.String(text))

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == decimalSep:
			sb.WriteByte('.')
		case r == '−':
			sb.WriteByte('-')
		case unicode.Is(unicode.Sc, r), isGroupingMark(r):
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func isGroupingMark(r rune) bool {
	switch r {
	case ',', '.', '_', '\'', '’', 'ʼ':
		return true
	}

	return unicode.IsSpace(r)
}

// stripISOCodes drops every run of exactly three ASCII letters that names a
// currency. Other letter runs are kept.
func stripISOCodes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && isASCIILetter(s[j]) {
			j++
		}
		if j == i {
			sb.WriteByte(s[i])
			i++
			continue
		}
		word := s[i:j]
		if len(word) != 3 || !isCurrencyCode(word) {
			sb.WriteString(word)
		}
		i = j
	}

	return sb.String()
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isCurrencyCode(word string) bool {
	_, err := currency.ParseISO(strings.ToUpper(word))

	return err == nil
}
