// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/angle"
)

// NewAngleCommand creates the angle command.
func NewAngleCommand(rootOpts *RootOptions) *cobra.Command {
	var from, to, normalize string
	var precision int

	cmd := &cobra.Command{
		Use:   "angle <value>",
		Short: "Convert and normalize angles",
		Example: `  mathval angle 180 --to rad
  mathval angle "45°30'" --from dms
  mathval angle -- -190 --normalize 180`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := angle.ParseUnit(from)
			if err != nil {
				return err
			}
			dst, err := angle.ParseUnit(to)
			if err != nil {
				return err
			}
			mode, err := parseNormalization(normalize)
			if err != nil {
				return err
			}
			deg, err := angle.Parse(args[0], src)
			if err != nil {
				return err
			}
			deg = angle.Normalize(deg, mode)
			if precision < 0 {
				precision = rootOpts.Config.Precision
			}
			rootOpts.Logger.Debug("angle converted", "degrees", deg, "from", src, "to", dst)

			fmt.Fprintln(cmd.OutOrStdout(), angle.Format(deg, dst, precision)+dst.Suffix())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "degrees", "input unit (degrees|radians|gradians|turns|dms)")
	cmd.Flags().StringVar(&to, "to", "degrees", "output unit")
	cmd.Flags().StringVar(&normalize, "normalize", "none", "wrapping (none|360|180)")
	cmd.Flags().IntVar(&precision, "precision", -1, "decimal places (default from config)")

	return cmd
}

func parseNormalization(name string) (angle.Normalization, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return angle.None, nil
	case "360", "0-360":
		return angle.ZeroTo360, nil
	case "180", "-180-180":
		return angle.NegativeTo180, nil
	}

	return angle.None, fmt.Errorf("unknown normalization %q", name)
}
