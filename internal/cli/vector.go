// SPDX-License-Identifier: MIT

package cli

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/vector"
)

// NewVectorCommand creates the vector command.
func NewVectorCommand(rootOpts *RootOptions) *cobra.Command {
	var with string

	cmd := &cobra.Command{
		Use:   "vector <vector>",
		Short: "Measure vectors and combine them with a second one",
		Example: `  mathval vector "[3, 4]"
  mathval vector "1, 0, 0" --with "0, 1, 0"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vector.Parse(args[0])
			if err != nil {
				return err
			}
			prec := rootOpts.Config.Precision
			w := cmd.OutOrStdout()
			field(w, "vector", v.String())
			field(w, "unit", v.UnitNotation())
			field(w, "norm", num(v.Magnitude(), prec))
			if n, err := v.Normalize(); err == nil {
				field(w, "direction", roundVector(n, prec).String())
			}
			if with == "" {
				return nil
			}

			o, err := vector.Parse(with)
			if err != nil {
				return err
			}
			rootOpts.Logger.Debug("vector pair", "a", v.String(), "b", o.String())
			dot, err := v.Dot(o)
			if err != nil {
				return err
			}
			field(w, "dot", num(dot, prec))
			if c, err := v.Cross(o); err == nil {
				field(w, "cross", c.String())
			}
			if a, err := v.AngleTo(o); err == nil {
				field(w, "angle", num(a*180/math.Pi, prec)+"°")
			}
			if p, err := v.ProjectOnto(o); err == nil {
				field(w, "project", roundVector(p, prec).String())
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "second vector for dot, cross, angle and projection")

	return cmd
}

// roundVector rounds every component to prec decimals for display.
func roundVector(v vector.Vector, prec int) vector.Vector {
	scale := math.Pow(10, float64(prec))
	c := v.Components()
	for i := range c {
		c[i] = math.Round(c[i]*scale) / scale
	}

	return vector.New(c...)
}
