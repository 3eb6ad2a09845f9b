// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/numstr"
)

// NewNumCommand creates the num command.
func NewNumCommand(rootOpts *RootOptions) *cobra.Command {
	var precision, inc, dec, style, group string
	var bounds numstr.Bounds
	var paste bool

	cmd := &cobra.Command{
		Use:   "num <value>",
		Short: "Validate, step and format bounded numeric text",
		Example: `  mathval num 1,000 --inc 1
  mathval num 95 --inc 10 --max 100
  mathval num "USD 1,234.50" --paste --precision decimal:2 --style thousand`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inc != "" && dec != "" {
				return fmt.Errorf("--inc and --dec are mutually exclusive")
			}
			p, err := numstr.ParsePrecision(precision)
			if err != nil {
				return err
			}
			st, err := numstr.ParseStyle(style)
			if err != nil {
				return err
			}
			sep, size := utf8.DecodeRuneInString(group)
			if size == 0 || size != len(group) {
				return fmt.Errorf("--group %q: want one character", group)
			}

			text := args[0]
			if paste {
				text = numstr.NormalizePaste(text, rootOpts.Config.DecimalRune())
				rootOpts.Logger.Debug("paste normalized", "input", args[0], "output", text)
			}

			var out string
			switch {
			case inc != "":
				out = numstr.Increment(p, text, inc, bounds)
			case dec != "":
				out = numstr.Decrement(p, text, dec, bounds)
			default:
				if out, err = numstr.Validate(p, text); err != nil {
					return err
				}
				out = bounds.Clamp(p, out)
			}
			rootOpts.Logger.Debug("number", "precision", p.String(), "value", out)

			fmt.Fprintln(cmd.OutOrStdout(), numstr.Format(out, st, sep))
			return nil
		},
	}
	cmd.Flags().StringVar(&precision, "precision", "u64", "u64|u128|i64|i128|decimal:N|bigdecimal")
	cmd.Flags().StringVar(&inc, "inc", "", "increment by this step")
	cmd.Flags().StringVar(&dec, "dec", "", "decrement by this step")
	cmd.Flags().StringVar(&bounds.Min, "min", "", "lower bound")
	cmd.Flags().StringVar(&bounds.Max, "max", "", "upper bound")
	cmd.Flags().StringVar(&style, "style", "standard", "standard|thousand|scientific")
	cmd.Flags().StringVar(&group, "group", ",", "thousand group separator")
	cmd.Flags().BoolVar(&paste, "paste", false, "clean pasted text first")

	return cmd
}
