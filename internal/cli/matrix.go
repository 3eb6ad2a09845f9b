// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/matrix"
)

var notations = []matrix.Notation{matrix.Brackets, matrix.Parentheses, matrix.Bars, matrix.DoubleBars}

func parseNotation(name string) (matrix.Notation, error) {
	for _, n := range notations {
		if n.String() == name {
			return n, nil
		}
	}

	return matrix.Brackets, fmt.Errorf("unknown notation %q", name)
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	var notation, export string
	var ops []string

	cmd := &cobra.Command{
		Use:   "matrix <matrix>",
		Short: "Render, export and evaluate matrices",
		Example: `  mathval matrix "[1, 2; 3, 4]" --op det --op tr
  mathval matrix "1 2; 3 4" --export latex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNotation(notation)
			if err != nil {
				return err
			}
			m, err := matrix.Parse(args[0], matrix.WithPrecision(rootOpts.Config.MatrixDigits))
			if err != nil {
				return err
			}
			rootOpts.Logger.Debug("matrix parsed", "rows", m.Rows(), "cols", m.Cols())

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, m.Format(n))
			if export != "" {
				target, err := matrix.ParseTarget(export)
				if err != nil {
					return fmt.Errorf("export %q: %w", export, err)
				}
				out, err := m.Export(target)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, out)
			}
			for _, name := range ops {
				op, err := matrix.ParseOperation(name)
				if err != nil {
					return fmt.Errorf("op %q: %w", name, err)
				}
				line, err := m.Preview(op)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, line)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&notation, "notation", "brackets", "delimiters (brackets|parentheses|bars|double-bars)")
	cmd.Flags().StringVar(&export, "export", "", "export target (latex|matlab|numpy|mathematica)")
	cmd.Flags().StringArrayVar(&ops, "op", nil, "operation preview (det|tr|T|frobenius), repeatable")

	return cmd
}
