// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// unitTable is the YAML document shape:
//
//	units:
//	  - symbol: nmi
//	    name: nautical mile
//	    category: length
//	    to_base: 1852
//	  - symbol: "°Ra"
//	    name: rankine
//	    category: temperature
//	    to_base: 0.5555555555555556
type unitTable struct {
	Units []unitEntry `yaml:"units"`
}

type unitEntry struct {
	Symbol   string  `yaml:"symbol"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	ToBase   float64 `yaml:"to_base"`
	Offset   float64 `yaml:"offset"`
}

// LoadYAML builds a Registry from a YAML unit table. Unknown fields are rejected.
func LoadYAML(r io.Reader) (*Registry, error) {
	var table unitTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("units: parse unit table: %w", err)
	}

	defs := make([]Unit, 0, len(table.Units))
	for i, e := range table.Units {
		cat, err := ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("units: entry %d: %w", i, err)
		}
		defs = append(defs, WithOffset(e.Symbol, e.Name, cat, e.ToBase, e.Offset))
	}

	reg, err := NewRegistry(defs...)
	if err != nil {
		return nil, fmt.Errorf("units: invalid unit table: %w", err)
	}

	return reg, nil
}

// LoadYAMLFile opens path and calls LoadYAML.
func LoadYAMLFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("units: open unit table: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}
