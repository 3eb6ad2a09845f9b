// SPDX-License-Identifier: MIT

package numstr

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Precision is a numeric backend for textual values.
// Step and Compare expect texts that already passed Validate.
type Precision interface {
	// String names the precision, e.g. "u64" or "decimal(2)".
	String() string
	// Validate checks text free of grouping separators.
	Validate(text string) error
	// Step returns current + sign*step as canonical text, saturated to the
	// representable range. sign is +1 or -1.
	Step(current, step string, sign int) string
	// Compare orders two valid texts numerically.
	Compare(a, b string) int
}

// fitter is implemented by precisions whose grammar is narrower than a
// finite decimal. fit rounds d with r to the nearest valid text.
type fitter interface {
	fit(d *apd.Decimal, r apd.Rounder) (string, bool)
}

// Static assertions.
var (
	_ Precision = (*intPrecision)(nil)
	_ Precision = decimalPrecision{}
	_ Precision = bigDecimalPrecision{}

	_ fitter = (*intPrecision)(nil)
	_ fitter = decimalPrecision{}
)

// quantize rounds d to exp fractional digits (exp <= 0) and renders it without
// an exponent.
func quantize(d *apd.Decimal, exp int32, r apd.Rounder) (string, bool) {
	ctx := apd.BaseContext.WithPrecision(bigDecimalDigits)
	ctx.Rounding = r
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, d, exp); err != nil {
		return "", false
	}
	if q.IsZero() {
		q.Negative = false
	}

	return q.Text('f'), true
}

// Integer precisions. Arithmetic saturates at the type limits.
var (
	U64  Precision = newIntPrecision("u64", new(big.Int), new(big.Int).SetUint64(math.MaxUint64))
	U128 Precision = newIntPrecision("u128", new(big.Int), maxBits(128))
	I64  Precision = newIntPrecision("i64", big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64))
	I128 Precision = newIntPrecision("i128", new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127)), maxBits(127))
)

// BigDecimal is the arbitrary-precision decimal precision. It has no range
// limit and no decimal-place limit; sums keep up to bigDecimalDigits
// significant digits.
var BigDecimal Precision = bigDecimalPrecision{}

const (
	bigDecimalDigits = 1000

	panicDecimalPlaces = "numstr: Decimal places must be >= 0"
)

// maxBits returns 2^bits - 1.
func maxBits(bits uint) *big.Int {
	one := big.NewInt(1)

	return new(big.Int).Sub(new(big.Int).Lsh(one, bits), one)
}

type intPrecision struct {
	name     string
	min, max *big.Int
}

func newIntPrecision(name string, lo, hi *big.Int) *intPrecision {
	return &intPrecision{name: name, min: lo, max: hi}
}

func (p *intPrecision) String() string { return p.name }

func (p *intPrecision) parse(text string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, ErrInvalidFormat
	}
	if v.Cmp(p.max) > 0 {
		return nil, &RangeError{Kind: Overflow, Limit: p.max.String()}
	}
	if v.Cmp(p.min) < 0 {
		return nil, &RangeError{Kind: Underflow, Limit: p.min.String()}
	}

	return v, nil
}

func (p *intPrecision) Validate(text string) error {
	_, err := p.parse(text)

	return err
}

func (p *intPrecision) value(text string) *big.Int {
	v, err := p.parse(text)
	if err != nil {
		return new(big.Int)
	}

	return v
}

func (p *intPrecision) Step(current, step string, sign int) string {
	a, b := p.value(current), p.value(step)
	var r big.Int
	if sign < 0 {
		r.Sub(a, b)
	} else {
		r.Add(a, b)
	}
	switch {
	case r.Cmp(p.max) > 0:
		return p.max.String()
	case r.Cmp(p.min) < 0:
		return p.min.String()
	}

	return r.String()
}

func (p *intPrecision) Compare(a, b string) int {
	return p.value(a).Cmp(p.value(b))
}

// fit rounds d to an integer and saturates it at the type limits.
func (p *intPrecision) fit(d *apd.Decimal, r apd.Rounder) (string, bool) {
	text, ok := quantize(d, 0, r)
	if !ok {
		return "", false
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return "", false
	}
	switch {
	case v.Cmp(p.max) > 0:
		v = p.max
	case v.Cmp(p.min) < 0:
		v = p.min
	}

	return v.String(), true
}

// Decimal returns a float64 precision that allows at most places fractional
// digits. Decimal panics if places is negative.
func Decimal(places int) Precision {
	if places < 0 {
		panic(panicDecimalPlaces)
	}

	return decimalPrecision{places: places}
}

type decimalPrecision struct {
	places int
}

func (p decimalPrecision) String() string {
	return "decimal(" + strconv.Itoa(p.places) + ")"
}

// fractionDigits counts the digits after the decimal point, reduced by a
// positive exponent ("1.25e1" has one).
func fractionDigits(text string) int {
	mant, exp, hasExp := strings.Cut(strings.ToLower(text), "e")
	_, frac, _ := strings.Cut(mant, ".")
	n := len(frac)
	if hasExp {
		if e, err := strconv.Atoi(exp); err == nil {
			n -= e
		}
	}

	return max(n, 0)
}

func (p decimalPrecision) parse(text string) (float64, error) {
	if strings.ContainsAny(text, "xXpP") {
		return 0, ErrInvalidFormat // hex floats
	}
	if fractionDigits(text) > p.places {
		return 0, &RangeError{Kind: TooManyDecimals, Limit: strconv.Itoa(p.places)}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, ErrInvalidFormat
		}
		switch {
		case math.IsInf(v, 1):
			return 0, &RangeError{Kind: Overflow, Limit: strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64)}
		case math.IsInf(v, -1):
			return 0, &RangeError{Kind: Underflow, Limit: strconv.FormatFloat(-math.MaxFloat64, 'g', -1, 64)}
		default:
			return 0, &RangeError{Kind: TooManyDecimals, Limit: strconv.Itoa(p.places)}
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidFormat
	}

	return v, nil
}

func (p decimalPrecision) Validate(text string) error {
	_, err := p.parse(text)

	return err
}

func (p decimalPrecision) value(text string) float64 {
	v, _ := p.parse(text)

	return v
}

func (p decimalPrecision) Step(current, step string, sign int) string {
	r := p.value(current) + float64(sign)*p.value(step)
	switch {
	case math.IsInf(r, 1):
		r = math.MaxFloat64
	case math.IsInf(r, -1):
		r = -math.MaxFloat64
	}
	s := strconv.FormatFloat(r, 'f', p.places, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}

	return s
}

func (p decimalPrecision) Compare(a, b string) int {
	return cmp.Compare(p.value(a), p.value(b))
}

// fit rounds d to p.places digits and saturates it at ±math.MaxFloat64.
func (p decimalPrecision) fit(d *apd.Decimal, r apd.Rounder) (string, bool) {
	text, ok := quantize(d, -int32(p.places), r)
	if !ok {
		return "", false
	}
	var re *RangeError
	switch err := p.Validate(text); {
	case err == nil:
		return text, true
	case errors.As(err, &re) && re.Kind == Overflow:
		return strconv.FormatFloat(math.MaxFloat64, 'f', -1, 64), true
	case errors.As(err, &re) && re.Kind == Underflow:
		return strconv.FormatFloat(-math.MaxFloat64, 'f', -1, 64), true
	}

	return "", false
}

type bigDecimalPrecision struct{}

func (bigDecimalPrecision) String() string { return "bigdecimal" }

func (bigDecimalPrecision) parse(text string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(text)
	if err != nil || d.Form != apd.Finite {
		return nil, ErrInvalidFormat
	}

	return d, nil
}

func (p bigDecimalPrecision) Validate(text string) error {
	_, err := p.parse(text)

	return err
}

func (p bigDecimalPrecision) value(text string) *apd.Decimal {
	d, err := p.parse(text)
	if err != nil {
		return new(apd.Decimal)
	}

	return d
}

func (p bigDecimalPrecision) Step(current, step string, sign int) string {
	ctx := apd.BaseContext.WithPrecision(bigDecimalDigits)
	var r apd.Decimal
	var err error
	if sign < 0 {
		_, err = ctx.Sub(&r, p.value(current), p.value(step))
	} else {
		_, err = ctx.Add(&r, p.value(current), p.value(step))
	}
	if err != nil {
		return current
	}
	if r.IsZero() {
		r.Negative = false
	}

	return r.Text('f')
}

func (p bigDecimalPrecision) Compare(a, b string) int {
	return p.value(a).Cmp(p.value(b))
}

// defaultDecimalPlaces is used by ParsePrecision for a bare "decimal".
const defaultDecimalPlaces = 2

// ParsePrecision maps a name to a Precision: "u64", "u128", "i64", "i128",
// "bigdecimal" (or "big"), and "decimal", "decimal(N)" or "decimal:N".
func ParsePrecision(name string) (Precision, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "u64":
		return U64, nil
	case "u128":
		return U128, nil
	case "i64":
		return I64, nil
	case "i128":
		return I128, nil
	case "bigdecimal", "big":
		return BigDecimal, nil
	case "decimal":
		return Decimal(defaultDecimalPlaces), nil
	}
	if rest, ok := strings.CutPrefix(s, "decimal"); ok {
		rest = strings.TrimPrefix(rest, ":")
		rest = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
		if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
			return Decimal(n), nil
		}
	}

	return nil, fmt.Errorf("ParsePrecision(%q): %w", name, ErrInvalidFormat)
}
