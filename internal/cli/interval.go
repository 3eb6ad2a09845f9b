// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/interval"
)

// NewIntervalCommand creates the interval command.
func NewIntervalCommand(rootOpts *RootOptions) *cobra.Command {
	var contains float64
	var intersect string

	cmd := &cobra.Command{
		Use:   "interval <interval>",
		Short: "Inspect, test and intersect intervals",
		Example: `  mathval interval "[0, 10)" --contains 10
  mathval interval "{x | x > 2}" --intersect "(-inf, 5]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := interval.Parse(args[0])
			if err != nil {
				return err
			}
			prec := rootOpts.Config.Precision
			w := cmd.OutOrStdout()
			field(w, "interval", iv.String())
			field(w, "set", iv.SetNotation())
			field(w, "empty", strconv.FormatBool(iv.IsEmpty()))
			field(w, "length", measure(iv.Length, prec))
			field(w, "midpoint", measure(iv.Midpoint, prec))

			if cmd.Flags().Changed("contains") {
				field(w, "contains", strconv.FormatBool(iv.Contains(contains)))
			}
			if intersect == "" {
				return nil
			}
			other, err := interval.Parse(intersect)
			if err != nil {
				return err
			}
			rootOpts.Logger.Debug("intersecting", "a", iv.String(), "b", other.String())
			field(w, "overlaps", strconv.FormatBool(iv.Intersects(other)))
			both, err := iv.Intersection(other)
			switch {
			case errors.Is(err, interval.ErrEmpty):
				field(w, "meet", "∅")
			case err != nil:
				return err
			default:
				field(w, "meet", both.String())
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&contains, "contains", 0, "report whether the interval contains this value")
	cmd.Flags().StringVar(&intersect, "intersect", "", "second interval to intersect with")

	return cmd
}

// measure renders a bounded measurement, or "unbounded".
func measure(f func() (float64, error), prec int) string {
	v, err := f()
	if err != nil {
		return "unbounded"
	}

	return num(v, prec)
}
