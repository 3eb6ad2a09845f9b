// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/rational"
)

// NewFractionCommand creates the fraction command.
func NewFractionCommand(rootOpts *RootOptions) *cobra.Command {
	var approx bool

	cmd := &cobra.Command{
		Use:   "fraction <value> [+|-|x|/ <value>]",
		Short: "Simplify, combine and render fractions",
		Example: `  mathval fraction "2 3/4"
  mathval fraction 1/2 + 1/3
  mathval fraction --approx 3.14159265`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected 1 or 3 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFraction(cmd, rootOpts, approx, args)
		},
	}
	cmd.Flags().BoolVar(&approx, "approx", false, "approximate decimal input within max_denominator")

	return cmd
}

func runFraction(cmd *cobra.Command, opts *RootOptions, approx bool, args []string) error {
	f, err := readFraction(opts, approx, args[0])
	if err != nil {
		return err
	}
	if len(args) == 3 {
		g, err := readFraction(opts, approx, args[2])
		if err != nil {
			return err
		}
		if f, err = combine(f, args[1], g); err != nil {
			return err
		}
		opts.Logger.Debug("fraction combined", "op", args[1], "result", f.String())
	}

	w := cmd.OutOrStdout()
	field(w, "fraction", f.Simplify().String())
	field(w, "mixed", f.MixedString())
	field(w, "decimal", f.DecimalString(opts.Config.Precision))
	field(w, "latex", f.LaTeX())

	return nil
}

func readFraction(opts *RootOptions, approx bool, text string) (rational.Fraction, error) {
	if approx {
		if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			opts.Logger.Debug("approximating", "value", v, "max_denominator", opts.Config.MaxDenominator)
			return rational.FromFloat(v, opts.Config.MaxDenominator)
		}
	}

	return rational.Parse(text)
}

func combine(a rational.Fraction, op string, b rational.Fraction) (rational.Fraction, error) {
	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "x", "*", "×":
		return a.Mul(b)
	case "/", "÷":
		return a.Div(b)
	}

	return rational.Fraction{}, fmt.Errorf("unknown operator %q", op)
}
