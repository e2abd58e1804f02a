package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/clepi/internal/epicycle"
	"github.com/olivier-w/clepi/internal/fourier"
	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/util"
)

type sonifyOptions struct {
	rate    int
	seconds float64
	revs    float64
}

func newSonifyCmd(a *app) *cobra.Command {
	opts := sonifyOptions{rate: media.DefaultSampleRate, seconds: 2, revs: 100}

	cmd := &cobra.Command{
		Use:   "sonify <path|shape:<name>> <out.wav>",
		Short: "Render an epicycle reconstruction as stereo audio",
		Long: `Trace a path with its epicycles and write the tip positions as a stereo
WAV file: x on the left channel, y on the right. Played into an XY
oscilloscope the file redraws the path.

Examples:
  clepi sonify -k 30 shape:star star.wav
  clepi sonify --revs-per-second 50 --seconds 5 drawing.bin drawing.wav`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSonify(a, cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVar(&opts.rate, "rate", opts.rate, "sample rate in Hz")
	cmd.Flags().Float64Var(&opts.seconds, "seconds", opts.seconds, "length of the output")
	cmd.Flags().Float64Var(&opts.revs, "revs-per-second", opts.revs, "revolutions of the drawing per second")
	return cmd
}

func runSonify(a *app, w io.Writer, in, out string, opts sonifyOptions) (err error) {
	if opts.rate <= 0 || opts.seconds <= 0 || opts.revs <= 0 {
		return fmt.Errorf("rate, seconds and revs-per-second must be positive")
	}

	name, points, err := a.loadPoints(in)
	if err != nil {
		return err
	}
	k := epicycle.ClampEpicycles(a.cfg.Animation.Epicycles, len(points))
	result, err := fourier.NewAnalyzer(fourier.WithLogger(a.logger)).Analyze(points, k)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", name, err)
	}
	defer result.Release()

	samples := max(int(float64(opts.rate)*opts.seconds), 1)
	step := epicycle.Period * opts.revs / float64(opts.rate)
	tips := make([]complex128, samples)
	for i := range tips {
		t := math.Mod(step*float64(i), epicycle.Period)
		tips[i] = epicycle.TipAt(result, t)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating audio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := media.EncodeWAV(f, tips, opts.rate); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	length := time.Duration(float64(samples) / float64(opts.rate) * float64(time.Second))
	a.logger.Info("audio rendered",
		zap.String("name", name),
		zap.Int("epicycles", result.Count()),
		zap.Int("samples", samples),
	)
	fmt.Fprintf(w, "wrote %s of audio (%d epicycles) to %s\n", util.FormatDuration(length), result.Count(), out)
	return nil
}
