// SPDX-License-Identifier: MIT

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the state derived from them.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	Config Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the mathval CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "mathval",
		Short: "Parse, convert and format mathematical values",
		Long: `mathval works with the value types of the mathval module from the shell:
fractions, angles, intervals, unit quantities, vectors, matrices, tensors
and bounded numeric strings.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main reports the error
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg
			opts.Logger.Debug("config loaded",
				"path", opts.ConfigPath,
				"max_denominator", cfg.MaxDenominator,
				"precision", cfg.Precision,
				"matrix_digits", cfg.MatrixDigits,
				"unit_table", cfg.UnitTable)

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug details to stderr")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a TOML config file")

	cmd.AddCommand(NewFractionCommand(opts))
	cmd.AddCommand(NewAngleCommand(opts))
	cmd.AddCommand(NewIntervalCommand(opts))
	cmd.AddCommand(NewUnitCommand(opts))
	cmd.AddCommand(NewVectorCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewTensorCommand(opts))
	cmd.AddCommand(NewNumCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
