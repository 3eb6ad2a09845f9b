// SPDX-License-Identifier: MIT

package rational

import "math"

const (
	// DefaultMaxDenominator bounds the denominator search used when Parse meets decimal text.
	DefaultMaxDenominator = 10000

	// ApproxTolerance ends the FromFloat search as soon as a candidate is closer than this.
	ApproxTolerance = 1e-10

	// float value of 2^63; any product at or above it cannot be rounded into an int64.
	twoPow63 = 9223372036854775808.0
)

// Fraction is an exact rational number Num/Den.
// Den is never zero for values built by this package; it is positive after Simplify.
type Fraction struct {
	Num int64 // numerator (carries the sign after Simplify)
	Den int64 // denominator (> 0 after Simplify)
}

// Zero is the canonical zero fraction 0/1.
var Zero = Fraction{Num: 0, Den: 1}

// New builds num/den without simplifying it.
// Errors: ErrInvalidDenominator when den == 0; ErrOverflow when a term is math.MinInt64,
// which cannot be negated during sign normalisation.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, rationalErrorf(opNew, ErrInvalidDenominator)
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Fraction{}, rationalErrorf(opNew, ErrOverflow)
	}

	return Fraction{Num: num, Den: den}, nil
}

// FromWhole returns n/1.
func FromWhole(n int64) Fraction {
	return Fraction{Num: n, Den: 1}
}

// FromMixed builds the improper fraction for "whole num/den".
// The sign is taken from whichever of whole or num is negative; magnitudes are combined
// as |whole|·|den| + |num| over |den|.
func FromMixed(whole, num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, rationalErrorf(opFromMixed, ErrInvalidDenominator)
	}
	if whole == math.MinInt64 || num == math.MinInt64 || den == math.MinInt64 {
		return Fraction{}, rationalErrorf(opFromMixed, ErrOverflow)
	}

	var sign int64 = 1
	if whole < 0 || num < 0 {
		sign = -1
	}
	w, n, d := abs64(whole), abs64(num), abs64(den)

	// w*d + n must stay within int64.
	if w != 0 && w > (math.MaxInt64-n)/d {
		return Fraction{}, rationalErrorf(opFromMixed, ErrOverflow)
	}

	return Fraction{Num: sign * (w*d + n), Den: d}, nil
}

// gcd is the Euclidean greatest common divisor of |a| and |b|.
func gcd(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// Simplify reduces f to lowest terms with a positive denominator; zero becomes 0/1.
// Simplify is idempotent.
func (f Fraction) Simplify() Fraction {
	if f.Num == 0 {
		return Zero
	}
	if f.Den == 0 {
		return f
	}

	g := gcd(f.Num, f.Den)
	num, den := f.Num/g, f.Den/g
	if den < 0 {
		num, den = -num, -den
	}

	return Fraction{Num: num, Den: den}
}

// Float64 returns Num/Den as a float64 (the decimal value of f).
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

// FromFloat finds the fraction closest to value whose denominator is at most maxDen.
//
// Implementation:
//   - Stage 1: reject NaN/±Inf and maxDen < 1; 0 maps to Zero.
//   - Stage 2: for den = 1..maxDen take num = round(|value|·den) and keep the candidate
//     only when its error is strictly smaller than the best so far, so ties keep the
//     smallest denominator.
//   - Stage 3: stop early once the error drops below ApproxTolerance; restore the sign
//     and simplify.
//
// Complexity: O(maxDen) time, O(1) space.
func FromFloat(value float64, maxDen int64) (Fraction, error) {
	if maxDen < 1 {
		return Fraction{}, rationalErrorf(opFromFloat, ErrInvalidDenominator)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fraction{}, rationalErrorf(opFromFloat, ErrNotFinite)
	}
	if value == 0 {
		return Zero, nil
	}

	negative := value < 0
	v := math.Abs(value)
	if v >= twoPow63 {
		return Fraction{}, rationalErrorf(opFromFloat, ErrOverflow)
	}

	var bestNum, bestDen int64 = 0, 1
	bestErr := v
	for den := int64(1); ; den++ {
		prod := v * float64(den)
		if prod >= twoPow63 {
			break // larger denominators cannot be represented either
		}
		num := int64(math.Round(prod))
		e := math.Abs(v - float64(num)/float64(den))
		if e < bestErr {
			bestErr, bestNum, bestDen = e, num, den
			if e < ApproxTolerance {
				break
			}
		}
		if den == maxDen {
			break
		}
	}

	if negative {
		bestNum = -bestNum
	}

	return Fraction{Num: bestNum, Den: bestDen}.Simplify(), nil
}

// IsWhole reports whether f is an integer.
func (f Fraction) IsWhole() bool {
	return f.Num%f.Den == 0
}

// WholePart is the integer part of f, truncated toward zero.
func (f Fraction) WholePart() int64 {
	return f.Num / f.Den
}

// FractionalNumerator is |Num mod Den|, the numerator of the proper part.
func (f Fraction) FractionalNumerator() int64 {
	return abs64(f.Num % f.Den)
}

// IsNegative reports whether f is below zero, whichever term carries the sign.
func (f Fraction) IsNegative() bool {
	return f.Num != 0 && (f.Num < 0) != (f.Den < 0)
}
