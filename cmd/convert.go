package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/shape"
	"github.com/olivier-w/clepi/internal/util"
)

type convertOptions struct {
	normalize bool
	reorder   bool
	maxPoints int
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a path between file formats",
		Long: `Read a path from any supported input and write it in the format named by
the output extension: .bin, .txt or .wav.

Examples:
  # Turn a stereo recording into a point file
  clepi convert scope.flac scope.bin

  # Order scattered points into a tour and fit them to a 20x20 box
  clepi convert --reorder --normalize points.txt tour.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(a, cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "center the path and scale it to a fixed extent")
	cmd.Flags().BoolVar(&opts.reorder, "reorder", false, "reorder points by nearest neighbour")
	cmd.Flags().IntVar(&opts.maxPoints, "max-points", 0, "keep every n-th point so at most about this many remain (0 keeps all)")
	return cmd
}

func runConvert(a *app, w io.Writer, in, out string, opts convertOptions) error {
	name, points, err := a.loadPoints(in)
	if err != nil {
		return err
	}
	if opts.maxPoints > 0 {
		points = shape.Subsample(points, opts.maxPoints)
	}
	if opts.reorder {
		points = shape.GreedyOrder(points)
	}
	if opts.normalize {
		points = shape.Normalize(points)
	}

	if err := media.Save(out, points); err != nil {
		return err
	}
	lo, hi := shape.Bounds(points)
	a.logger.Info("path converted",
		zap.String("name", name),
		zap.String("output", out),
		zap.Int("points", len(points)),
	)
	fmt.Fprintf(w, "wrote %d points to %s (bounds %s to %s)\n",
		len(points), out, util.FormatComplex(lo, 2), util.FormatComplex(hi, 2))
	return nil
}
