// SPDX-License-Identifier: MIT

// Package numstr validates and steps numbers that live as text, the way a bounded
// numeric input field holds them.
//
// What it covers:
//   - precision backends: U64, U128, I64, I128, fixed-place Decimal and the
//     arbitrary-precision BigDecimal;
//   - validation that strips ',' and '_' grouping and classifies failures as
//     overflow, underflow, too many decimals or bad format;
//   - saturating Increment/Decrement clamped to optional textual bounds;
//   - Standard, Thousand and Scientific display styles;
//   - cleanup of pasted text (currency marks, NBSP and apostrophe grouping,
//     full-width digits, comma decimals).
//
// Usage:
//
//	v, err := numstr.Validate(numstr.U64, "1,000")   // "1000", nil
//	next := numstr.Increment(numstr.U64, "95", "10", numstr.Bounds{Max: "100"}) // "100"
//
// Range failures are *RangeError values; match them with errors.Is against
// ErrOverflow, ErrUnderflow or ErrTooManyDecimals, or errors.As to read the limit.
package numstr
