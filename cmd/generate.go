package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/shape"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		points int
		size   float64
	)

	cmd := &cobra.Command{
		Use:       "generate <shape> <out>",
		Short:     "Write a built-in shape to a path file",
		ValidArgs: shape.Names(),
		Long: fmt.Sprintf(`Generate a built-in shape and write it to a .bin, .txt or .wav file.

Shapes: %v

Examples:
  clepi generate star star.bin
  clepi generate --points 1000 --size 10 heart heart.txt`, shape.Names()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("points") {
				points = a.cfg.Shape.Points
			}
			if !cmd.Flags().Changed("size") {
				size = a.cfg.Shape.Size
			}
			return runGenerate(a, cmd.OutOrStdout(), args[0], args[1], points, size)
		},
	}

	cmd.Flags().IntVar(&points, "points", shape.DefaultPoints, "number of points")
	cmd.Flags().Float64Var(&size, "size", shape.DefaultSize, "shape radius")
	return cmd
}

func runGenerate(a *app, w io.Writer, name, out string, n int, size float64) error {
	points, err := shape.Generate(name, n, size)
	if err != nil {
		return err
	}
	if err := media.Save(out, points); err != nil {
		return err
	}
	a.logger.Info("shape generated", zap.String("shape", name), zap.Int("points", n))
	fmt.Fprintf(w, "wrote %d points to %s\n", len(points), out)
	return nil
}
