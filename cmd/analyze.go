package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/clepi/internal/epicycle"
	"github.com/olivier-w/clepi/internal/fourier"
	"github.com/olivier-w/clepi/internal/shape"
	"github.com/olivier-w/clepi/internal/util"
)

// analysisReport is the analyze command's output.
type analysisReport struct {
	Name           string                `json:"name" yaml:"name"`
	Points         int                   `json:"points" yaml:"points"`
	ArcLength      float64               `json:"arc_length" yaml:"arc_length"`
	Epicycles      int                   `json:"epicycles" yaml:"epicycles"`
	TotalAmplitude float64               `json:"total_amplitude" yaml:"total_amplitude"`
	Coefficients   []fourier.Coefficient `json:"coefficients" yaml:"coefficients"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <path|shape:<name>>",
		Short: "Print the ranked epicycle coefficients of a path",
		Long: `Transform a path and print its largest coefficients, strongest first.

The epicycle count is limited to half the number of path points.

Examples:
  clepi analyze -k 10 drawing.bin
  clepi analyze -o json shape:star`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(a, cmd.OutOrStdout(), args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "table", "output format (table, json, yaml)")
	flags.Int("precision", 4, "decimal places in table output")

	a.bind(flags, map[string]string{
		"output.format":    "output",
		"output.precision": "precision",
	})
	return cmd
}

func runAnalyze(a *app, w io.Writer, arg string) error {
	name, points, err := a.loadPoints(arg)
	if err != nil {
		return err
	}

	k := epicycle.ClampEpicycles(a.cfg.Animation.Epicycles, len(points))
	result, err := fourier.NewAnalyzer(fourier.WithLogger(a.logger)).Analyze(points, k)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", name, err)
	}
	defer result.Release()

	report := analysisReport{
		Name:           name,
		Points:         len(points),
		ArcLength:      shape.ArcLength(points, true),
		Epicycles:      result.Count(),
		TotalAmplitude: result.TotalAmplitude(),
		Coefficients:   result.Coefficients(),
	}
	a.logger.Debug("analysis complete", zap.Int("epicycles", report.Epicycles))

	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeReportTable(w, report, a.cfg.Output.Precision)
	}
}

func writeReportTable(w io.Writer, r analysisReport, precision int) error {
	fmt.Fprintf(w, "%s: %d points, %d epicycles, arc length %s\n\n",
		r.Name, r.Points, r.Epicycles, util.FormatFloat(r.ArcLength, precision))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "RANK\tFREQUENCY\tAMPLITUDE\tPHASE\tBIN\t")
	for i, c := range r.Coefficients {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t\n",
			i+1, c.Frequency,
			util.FormatFloat(c.Amplitude, precision),
			util.FormatFloat(c.Phase, precision),
			c.Bin)
	}
	return tw.Flush()
}
