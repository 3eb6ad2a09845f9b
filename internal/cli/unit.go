// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/units"
)

// NewUnitCommand creates the unit command.
func NewUnitCommand(rootOpts *RootOptions) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "unit <quantity> <target-symbol>",
		Short: "Convert quantities between units of one category",
		Example: `  mathval unit 5km mi
  mathval unit "98.6 °F" °C
  mathval unit --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rootOpts.Config.Registry()
			if err != nil {
				return err
			}
			rootOpts.Logger.Debug("unit registry ready", "units", reg.Len(), "table", rootOpts.Config.UnitTable)
			w := cmd.OutOrStdout()
			if list {
				for _, u := range reg.Units() {
					fmt.Fprintf(w, "%-6s%-14s%s\n", u.Symbol, u.Category, u.Name)
				}
				return nil
			}

			v, err := units.Parse(args[0], reg)
			if err != nil {
				return err
			}
			target, ok := reg.Lookup(args[1])
			if !ok {
				return fmt.Errorf("unit %s: %w", strconv.Quote(args[1]), units.ErrInvalidFormat)
			}
			out, err := v.ConvertTo(target)
			if err != nil {
				return err
			}
			rootOpts.Logger.Debug("converted", "from", v.String(), "to", out.String())

			prec := rootOpts.Config.Precision
			fmt.Fprintf(w, "%s %s = %s %s\n", num(v.Amount, prec), v.Unit.Symbol, num(out.Amount, prec), out.Unit.Symbol)
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the known units")

	return cmd
}
