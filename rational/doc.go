// Package rational implements exact fractions over int64 terms.
//
// What it covers:
//   - construction from integer terms, whole numbers and mixed numbers;
//   - lowest-terms simplification (Euclid) with a positive denominator;
//   - best rational approximation of a float64 within a denominator budget;
//   - parsing of mixed ("1 1/2"), simple ("3/4"), decimal ("0.75") and integer text;
//   - rendering as a simple fraction, a mixed number, fixed decimals or LaTeX;
//   - exact Add/Sub/Mul/Div that refuse to overflow the int64 terms.
//
// Usage:
//
//	f, err := rational.Parse("2 3/4")
//	if err != nil { ... }
//	fmt.Println(f.Simplify())      // 11/4
//	fmt.Println(f.MixedString())   // 2 3/4
//
// The zero Fraction{} has a zero denominator and is not a valid value; start from
// rational.Zero, New, FromWhole or Parse instead.
package rational
