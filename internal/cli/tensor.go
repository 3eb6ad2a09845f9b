// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathval/matrix"
	"github.com/katalvlaran/mathval/tensor"
)

// NewTensorCommand creates the tensor command.
func NewTensorCommand(rootOpts *RootOptions) *cobra.Command {
	var shape []int
	var data, fixed []string
	var transpose bool

	cmd := &cobra.Command{
		Use:   "tensor",
		Short: "Build a tensor and view it or one of its 2-D slices",
		Example: `  mathval tensor --shape 2,3,4 --fix 0=1
  mathval tensor --shape 2,2 --data 1,2,3,4 --transpose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTensor(shape, data)
			if err != nil {
				return err
			}
			if transpose {
				if t, err = t.Transpose(); err != nil {
					return err
				}
			}
			rootOpts.Logger.Debug("tensor built", "shape", t.Shape(), "size", t.Size())

			prec := rootOpts.Config.Precision
			w := cmd.OutOrStdout()
			field(w, "shape", t.ShapeString())
			field(w, "tensor", t.String())
			field(w, "sum", num(t.Sum(), prec))
			field(w, "norm", num(t.FrobeniusNorm(), prec))
			if len(fixed) == 0 {
				return nil
			}

			fx, err := parseFixed(fixed)
			if err != nil {
				return err
			}
			s, err := t.Slice2D(fx...)
			if err != nil {
				return err
			}
			m, err := s.Dense(matrix.WithPrecision(rootOpts.Config.MatrixDigits))
			if err != nil {
				return err
			}
			field(w, "slice", fmt.Sprintf("axes %d×%d", s.RowAxis, s.ColAxis))
			fmt.Fprintln(w, m.Format(matrix.Brackets))

			return nil
		},
	}
	cmd.Flags().IntSliceVar(&shape, "shape", []int{2, 3}, "tensor shape")
	cmd.Flags().StringSliceVar(&data, "data", nil, "row-major values (default 0, 1, 2, ...)")
	cmd.Flags().StringArrayVar(&fixed, "fix", nil, "fixed axis as axis=index, repeatable")
	cmd.Flags().BoolVar(&transpose, "transpose", false, "swap the last two axes first")

	return cmd
}

func buildTensor(shape []int, data []string) (*tensor.Tensor, error) {
	if len(data) == 0 {
		t, err := tensor.New(shape...)
		if err != nil {
			return nil, err
		}
		buf := t.Data()
		for i := range buf {
			buf[i] = float64(i)
		}
		return tensor.FromData(buf, shape...)
	}

	buf := make([]float64, len(data))
	for i, s := range data {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("data[%d] %q: %w", i, s, err)
		}
		buf[i] = v
	}

	return tensor.FromData(buf, shape...)
}

func parseFixed(specs []string) ([]tensor.Fixed, error) {
	out := make([]tensor.Fixed, 0, len(specs))
	for _, spec := range specs {
		a, i, ok := strings.Cut(spec, "=")
		axis, errA := strconv.Atoi(strings.TrimSpace(a))
		index, errI := strconv.Atoi(strings.TrimSpace(i))
		if !ok || errA != nil || errI != nil {
			return nil, fmt.Errorf("fix %q: want axis=index", spec)
		}
		out = append(out, tensor.Fixed{Axis: axis, Index: index})
	}

	return out, nil
}
