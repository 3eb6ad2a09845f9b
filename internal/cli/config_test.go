// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, int64(10000), cfg.MaxDenominator)
	assert.Equal(t, '.', cfg.DecimalRune())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
max_denominator = 1000
precision = 2
decimal_separator = ","
matrix_digits = 3
unit_table = "../../units/testdata/nautical.yaml"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		MaxDenominator:   1000,
		Precision:        2,
		DecimalSeparator: ",",
		MatrixDigits:     3,
		UnitTable:        "../../units/testdata/nautical.yaml",
	}, cfg)
	assert.Equal(t, ',', cfg.DecimalRune())

	reg, err := cfg.Registry()
	require.NoError(t, err)
	_, ok := reg.Lookup("nmi")
	assert.True(t, ok)
	_, ok = reg.Lookup("km")
	assert.True(t, ok) // built-ins kept
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "precision = 6\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, int64(10000), cfg.MaxDenominator) // default kept
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("does-not-exist.toml")
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "precision = [\n"))
	require.Error(t, err)

	for _, body := range []string{
		"max_denominator = 0\n",
		"precision = -1\n",
		"matrix_digits = 18\n",
		`decimal_separator = ".."` + "\n",
		`decimal_separator = ""` + "\n",
	} {
		_, err = LoadConfig(writeConfig(t, body))
		require.ErrorIs(t, err, ErrInvalidConfig, "config %q", body)
	}

	_, _, err = execute(t, "--config", writeConfig(t, "max_denominator = -5\n"), "version")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
