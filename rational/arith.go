// SPDX-License-Identifier: MIT

package rational

import "math/big"

// rat lifts f into math/big; callers must have checked Den != 0.
func (f Fraction) rat() *big.Rat {
	return big.NewRat(f.Num, f.Den)
}

// fromRat narrows r back to int64 terms. big.Rat is always in lowest terms with a
// positive denominator, so the result is already simplified.
func fromRat(op string, r *big.Rat) (Fraction, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Fraction{}, rationalErrorf(op, ErrOverflow)
	}
	f, err := New(num.Int64(), den.Int64())
	if err != nil {
		return Fraction{}, rationalErrorf(op, ErrOverflow)
	}

	return f, nil
}

func checkPair(op string, a, b Fraction) error {
	if a.Den == 0 || b.Den == 0 {
		return rationalErrorf(op, ErrInvalidDenominator)
	}

	return nil
}

// Add returns f + o in lowest terms.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	if err := checkPair(opAdd, f, o); err != nil {
		return Fraction{}, err
	}

	return fromRat(opAdd, new(big.Rat).Add(f.rat(), o.rat()))
}

// Sub returns f - o in lowest terms.
func (f Fraction) Sub(o Fraction) (Fraction, error) {
	if err := checkPair(opSub, f, o); err != nil {
		return Fraction{}, err
	}

	return fromRat(opSub, new(big.Rat).Sub(f.rat(), o.rat()))
}

// Mul returns f · o in lowest terms.
func (f Fraction) Mul(o Fraction) (Fraction, error) {
	if err := checkPair(opMul, f, o); err != nil {
		return Fraction{}, err
	}

	return fromRat(opMul, new(big.Rat).Mul(f.rat(), o.rat()))
}

// Div returns f / o in lowest terms; ErrDivisionByZero when o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if err := checkPair(opDiv, f, o); err != nil {
		return Fraction{}, err
	}
	if o.Num == 0 {
		return Fraction{}, rationalErrorf(opDiv, ErrDivisionByZero)
	}

	return fromRat(opDiv, new(big.Rat).Quo(f.rat(), o.rat()))
}

// Neg returns -f in lowest terms.
func (f Fraction) Neg() (Fraction, error) {
	if f.Den == 0 {
		return Fraction{}, rationalErrorf(opNeg, ErrInvalidDenominator)
	}

	return fromRat(opNeg, new(big.Rat).Neg(f.rat()))
}

// Cmp compares f and o by value: -1, 0 or +1. Both must have non-zero denominators.
func (f Fraction) Cmp(o Fraction) int {
	return f.rat().Cmp(o.rat())
}

// Equal reports value equality, so 1/2 equals 2/4.
func (f Fraction) Equal(o Fraction) bool {
	return f.Cmp(o) == 0
}
