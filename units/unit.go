// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category groups mutually convertible units.
type Category int

const (
	Length Category = iota
	Mass
	Time
	Temperature
	Volume
	Area
	Speed
	Force
	Energy
	Power
	Pressure
	Angle
	Data
	Custom
)

var categoryNames = [...]string{
	"length", "mass", "time", "temperature", "volume", "area", "speed",
	"force", "energy", "power", "pressure", "angle", "data", "custom",
}

func (c Category) String() string {
	if c < Length || c > Custom {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return categoryNames[c]
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range categoryNames {
		if cn == n {
			return Category(i), nil
		}
	}

	return 0, fmt.Errorf("ParseCategory(%q): %w", name, ErrUnknownCategory)
}

// Unit is one unit of measure.
type Unit struct {
	Symbol   string   // display symbol, e.g. "km"
	Name     string   // full name, e.g. "kilometer"
	Category Category // units convert only within a category
	ToBase   float64  // multiply by this to reach the base unit
	Offset   float64  // added before scaling (temperatures)
}

// NewUnit returns a unit with zero offset.
func NewUnit(symbol, name string, category Category, toBase float64) Unit {
	return Unit{Symbol: symbol, Name: name, Category: category, ToBase: toBase}
}

// WithOffset returns a unit with an additive offset applied before scaling.
func WithOffset(symbol, name string, category Category, toBase, offset float64) Unit {
	return Unit{Symbol: symbol, Name: name, Category: category, ToBase: toBase, Offset: offset}
}

// IsCompatible reports whether u and o share a category.
func (u Unit) IsCompatible(o Unit) bool {
	return u.Category == o.Category
}

func (u Unit) validate() error {
	switch {
	case strings.TrimSpace(u.Symbol) == "":
		return fmt.Errorf("unit %q: empty symbol: %w", u.Name, ErrInvalidUnit)
	case !(u.ToBase > 0) || math.IsInf(u.ToBase, 0):
		return fmt.Errorf("unit %q: scale %v: %w", u.Symbol, u.ToBase, ErrInvalidUnit)
	case math.IsNaN(u.Offset) || math.IsInf(u.Offset, 0):
		return fmt.Errorf("unit %q: offset %v: %w", u.Symbol, u.Offset, ErrInvalidUnit)
	}

	return nil
}

// Value is an amount tagged with its unit.
type Value struct {
	Amount float64
	Unit   Unit
}

// ToBase expresses v in its category's base unit.
func (v Value) ToBase() float64 {
	return (v.Amount + v.Unit.Offset) * v.Unit.ToBase
}

// FromBase converts a base-unit amount into unit.
func FromBase(base float64, unit Unit) float64 {
	return base/unit.ToBase - unit.Offset
}

// ConvertTo re-expresses v in target; ErrIncompatible across categories.
func (v Value) ConvertTo(target Unit) (Value, error) {
	if !v.Unit.IsCompatible(target) {
		return Value{}, fmt.Errorf("ConvertTo(%s → %s): %s vs %s: %w",
			v.Unit.Symbol, target.Symbol, v.Unit.Category, target.Category, ErrIncompatible)
	}

	return Value{Amount: FromBase(v.ToBase(), target), Unit: target}, nil
}

// Format prints the amount with precision decimals followed by the symbol.
func (v Value) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}

	return strconv.FormatFloat(v.Amount, 'f', precision, 64) + " " + v.Unit.Symbol
}

// String prints the shortest exact decimal followed by the symbol.
func (v Value) String() string {
	return strconv.FormatFloat(v.Amount, 'f', -1, 64) + " " + v.Unit.Symbol
}
