// SPDX-License-Identifier: MIT

// Package rational_test contains unit tests for Fraction construction, simplification
// and float approximation.
package rational_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathval/rational"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsZeroDenominator ensures a zero denominator is a construction error.
func TestNewRejectsZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)                            // 1/0 is not a number
	require.ErrorIs(t, err, rational.ErrInvalidDenominator) // expect sentinel

	_, err = rational.FromMixed(2, 1, 0)                    // mixed form with zero denominator
	require.ErrorIs(t, err, rational.ErrInvalidDenominator) // expect sentinel
}

// TestNewRejectsMinInt64 ensures terms that cannot be negated are refused.
func TestNewRejectsMinInt64(t *testing.T) {
	_, err := rational.New(math.MinInt64, 3)
	require.ErrorIs(t, err, rational.ErrOverflow)

	_, err = rational.New(1, math.MinInt64)
	require.ErrorIs(t, err, rational.ErrOverflow)
}

// TestSimplify covers lowest terms, sign placement and the zero case.
func TestSimplify(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		want     rational.Fraction
	}{
		{"halves", 4, 8, rational.Fraction{Num: 1, Den: 2}},
		{"negative denominator", 3, -4, rational.Fraction{Num: -3, Den: 4}},
		{"both negative", -6, -9, rational.Fraction{Num: 2, Den: 3}},
		{"zero", 0, 7, rational.Fraction{Num: 0, Den: 1}},
		{"already lowest", 5, 7, rational.Fraction{Num: 5, Den: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := rational.New(tc.num, tc.den)
			require.NoError(t, err)
			got := f.Simplify()
			require.Equal(t, tc.want, got)
			require.Equal(t, got, got.Simplify()) // idempotent
			require.Positive(t, got.Den)          // denominator always positive
		})
	}
}

// TestGCD checks the Euclidean helper on signed input.
func TestGCD(t *testing.T) {
	require.Equal(t, int64(4), rational.GCD(12, 8))
	require.Equal(t, int64(4), rational.GCD(-12, 8))
	require.Equal(t, int64(7), rational.GCD(7, 0))
	require.Equal(t, int64(1), rational.GCD(17, 5))
}

// TestFromMixed takes the sign from either the whole part or the numerator.
func TestFromMixed(t *testing.T) {
	f, err := rational.FromMixed(1, 3, 4)
	require.NoError(t, err)
	require.Equal(t, rational.Fraction{Num: 7, Den: 4}, f)

	f, err = rational.FromMixed(-2, 1, 2)
	require.NoError(t, err)
	require.Equal(t, rational.Fraction{Num: -5, Den: 2}, f)

	f, err = rational.FromMixed(0, -1, 3)
	require.NoError(t, err)
	require.Equal(t, rational.Fraction{Num: -1, Den: 3}, f)

	f, err = rational.FromMixed(1, 1, -2) // denominator sign is dropped
	require.NoError(t, err)
	require.Equal(t, rational.Fraction{Num: 3, Den: 2}, f)

	_, err = rational.FromMixed(math.MaxInt64, 1, 2)
	require.ErrorIs(t, err, rational.ErrOverflow)
}

// TestFromFloat checks the best-approximation search.
func TestFromFloat(t *testing.T) {
	cases := []struct {
		name   string
		value  float64
		maxDen int64
		want   rational.Fraction
	}{
		{"quarter", 0.25, 10000, rational.Fraction{Num: 1, Den: 4}},
		{"third within 100", 0.333333, 100, rational.Fraction{Num: 1, Den: 3}},
		{"negative", -1.5, 10, rational.Fraction{Num: -3, Den: 2}},
		{"zero", 0, 10, rational.Fraction{Num: 0, Den: 1}},
		{"whole", 3, 10, rational.Fraction{Num: 3, Den: 1}},
		{"budget of one rounds", 2.6, 1, rational.Fraction{Num: 3, Den: 1}},
		{"pi within 10", math.Pi, 10, rational.Fraction{Num: 22, Den: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rational.FromFloat(tc.value, tc.maxDen)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.LessOrEqual(t, got.Den, tc.maxDen)
		})
	}
}

// TestFromFloatErrors covers the rejected inputs.
func TestFromFloatErrors(t *testing.T) {
	_, err := rational.FromFloat(0.5, 0)
	require.ErrorIs(t, err, rational.ErrInvalidDenominator)

	_, err = rational.FromFloat(math.NaN(), 10)
	require.ErrorIs(t, err, rational.ErrNotFinite)

	_, err = rational.FromFloat(math.Inf(-1), 10)
	require.ErrorIs(t, err, rational.ErrNotFinite)

	_, err = rational.FromFloat(1e19, 10)
	require.ErrorIs(t, err, rational.ErrOverflow)
}

// TestPredicates covers IsWhole, WholePart, FractionalNumerator and IsNegative.
func TestPredicates(t *testing.T) {
	f := rational.Fraction{Num: -7, Den: 2}
	require.False(t, f.IsWhole())
	require.Equal(t, int64(-3), f.WholePart())          // truncation toward zero
	require.Equal(t, int64(1), f.FractionalNumerator()) // |−7 mod 2|
	require.True(t, f.IsNegative())

	g := rational.Fraction{Num: 6, Den: -3}
	require.True(t, g.IsWhole())
	require.True(t, g.IsNegative())
	require.False(t, rational.Zero.IsNegative())
	require.InDelta(t, -3.5, f.Float64(), 1e-12)
}
