// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/mathval/rational"
	"github.com/katalvlaran/mathval/units"
)

// Config holds the defaults read from the optional TOML file.
type Config struct {
	MaxDenominator   int64  `toml:"max_denominator"`
	Precision        int    `toml:"precision"`
	DecimalSeparator string `toml:"decimal_separator"`
	MatrixDigits     int    `toml:"matrix_digits"`
	UnitTable        string `toml:"unit_table"`
}

// ErrInvalidConfig indicates a config value outside its domain.
var ErrInvalidConfig = errors.New("cli: invalid config")

// DefaultConfig returns the values used when no file is given.
func DefaultConfig() Config {
	return Config{
		MaxDenominator:   rational.DefaultMaxDenominator,
		Precision:        4,
		DecimalSeparator: ".",
		MatrixDigits:     6,
	}
}

// LoadConfig reads path over DefaultConfig. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.MaxDenominator < 1:
		return fmt.Errorf("max_denominator %d: %w", c.MaxDenominator, ErrInvalidConfig)
	case c.Precision < 0 || c.Precision > 17:
		return fmt.Errorf("precision %d: %w", c.Precision, ErrInvalidConfig)
	case c.MatrixDigits < 0 || c.MatrixDigits > 17:
		return fmt.Errorf("matrix_digits %d: %w", c.MatrixDigits, ErrInvalidConfig)
	case utf8.RuneCountInString(c.DecimalSeparator) != 1:
		return fmt.Errorf("decimal_separator %q: %w", c.DecimalSeparator, ErrInvalidConfig)
	}

	return nil
}

// DecimalRune returns the decimal separator as a rune.
func (c Config) DecimalRune() rune {
	r, _ := utf8.DecodeRuneInString(c.DecimalSeparator)

	return r
}

// Registry returns the built-in units, extended by UnitTable when set.
func (c Config) Registry() (*units.Registry, error) {
	reg := units.Builtin()
	if c.UnitTable == "" {
		return reg, nil
	}
	custom, err := units.LoadYAMLFile(c.UnitTable)
	if err != nil {
		return nil, err
	}

	return reg.Merge(custom)
}
