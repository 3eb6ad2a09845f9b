// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Registry is an immutable ordered set of units with unique symbols.
// It is safe for concurrent use.
type Registry struct {
	units    []Unit
	bySymbol map[string]int
}

// NewRegistry validates units and freezes them in the given order.
// Errors: ErrInvalidUnit for a bad definition, ErrDuplicateSymbol for a repeated symbol.
func NewRegistry(units ...Unit) (*Registry, error) {
	r := &Registry{
		units:    make([]Unit, 0, len(units)),
		bySymbol: make(map[string]int, len(units)),
	}
	for _, u := range units {
		if err := u.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.bySymbol[u.Symbol]; dup {
			return nil, fmt.Errorf("NewRegistry: %q: %w", u.Symbol, ErrDuplicateSymbol)
		}
		r.bySymbol[u.Symbol] = len(r.units)
		r.units = append(r.units, u)
	}

	return r, nil
}

func mustRegistry(units ...Unit) *Registry {
	r, err := NewRegistry(units...)
	if err != nil {
		panic(err)
	}

	return r
}

// Len is the number of units.
func (r *Registry) Len() int { return len(r.units) }

// Units returns a copy of the units in registry order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)

	return out
}

// Lookup finds a unit by exact symbol.
func (r *Registry) Lookup(symbol string) (Unit, bool) {
	i, ok := r.bySymbol[symbol]
	if !ok {
		return Unit{}, false
	}

	return r.units[i], true
}

// ByCategory returns the sub-registry of units in c, order preserved.
func (r *Registry) ByCategory(c Category) *Registry {
	var sel []Unit
	for _, u := range r.units {
		if u.Category == c {
			sel = append(sel, u)
		}
	}

	return mustRegistry(sel...) // subset of a valid registry
}

// Merge appends other's units after r's. Symbols must stay unique.
func (r *Registry) Merge(other *Registry) (*Registry, error) {
	all := make([]Unit, 0, len(r.units)+len(other.units))
	all = append(all, r.units...)
	all = append(all, other.units...)

	return NewRegistry(all...)
}

// Parse reads "<number><unit>" using the units of reg in order. For each unit the
// symbol suffix is tried first, then its name case-insensitively; the remaining
// text must be a number. Text that is only a number gets the first unit.
func Parse(input string, reg *Registry) (Value, error) {
	s := strings.TrimSpace(input)
	if s == "" || reg == nil || reg.Len() == 0 {
		return Value{}, fmt.Errorf("Parse(%q): %w", input, ErrInvalidFormat)
	}

	lower := strings.ToLower(s)
	for _, u := range reg.units {
		if rest, ok := strings.CutSuffix(s, u.Symbol); ok {
			if v, ok := parseAmount(rest); ok {
				return Value{Amount: v, Unit: u}, nil
			}
		}
		if u.Name == "" {
			continue
		}
		if rest, ok := strings.CutSuffix(lower, strings.ToLower(u.Name)); ok {
			if v, ok := parseAmount(rest); ok {
				return Value{Amount: v, Unit: u}, nil
			}
		}
	}
	if v, ok := parseAmount(s); ok {
		return Value{Amount: v, Unit: reg.units[0]}, nil
	}

	return Value{}, fmt.Errorf("Parse(%q): %w", input, ErrInvalidFormat)
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}
