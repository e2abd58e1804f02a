// Package cmd implements the clepi command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/olivier-w/clepi/internal/config"
	"github.com/olivier-w/clepi/internal/logging"
	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/shape"
)

// annotationTUI marks commands that own the terminal; they never log to it.
const annotationTUI = "clepi/tui"

// app carries the state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	configFile string

	cfg    *config.Config
	logger *zap.Logger
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the clepi command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "clepi",
		Short: "Fourier epicycles in the terminal",
		Long: `clepi decomposes a closed 2D path into rotating circles and animates
them redrawing the path in the terminal.

Paths come from binary or text point files, stereo audio (left channel is x,
right channel is y), gallery manifests or built-in shapes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "",
		"config file (default is $HOME/.config/clepi/clepi.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.IntP("epicycles", "k", 150, "number of epicycles to keep")
	flags.Int("max-audio-points", media.DefaultMaxAudioPoints, "decimate audio paths to at most this many points")
	flags.Int("resample", 0, "resample every path to this many evenly spaced points (0 keeps the file's points)")

	a.bind(flags, map[string]string{
		"log_level":               "log-level",
		"log_file":                "log-file",
		"verbose":                 "verbose",
		"animation.epicycles":     "epicycles",
		"ingest.max_audio_points": "max-audio-points",
		"ingest.resample":         "resample",
	})

	rootCmd.AddCommand(
		newPlayCmd(a),
		newAnalyzeCmd(a),
		newConvertCmd(a),
		newGenerateCmd(a),
		newSonifyCmd(a),
	)
	return rootCmd
}

// bind binds flags to config keys. Each key has exactly one flag so every
// command reads the same value.
func (a *app) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// initialize reads the configuration after flags are parsed and builds the
// logger.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := config.Setup(a.v, a.configFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: cfg.Verbose,
		File:    cfg.LogFile,
		Quiet:   cmd.Annotations[annotationTUI] == "true",
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// loadPoints reads a path file or generates "shape:<name>", then applies
// the configured resampling.
func (a *app) loadPoints(arg string) (string, []complex128, error) {
	var (
		name   string
		points []complex128
		err    error
	)
	if s, ok := strings.CutPrefix(arg, media.ShapePrefix); ok {
		name = strings.ToLower(s)
		points, err = shape.Generate(name, a.cfg.Shape.Points, a.cfg.Shape.Size)
	} else {
		var p media.Path
		p, err = media.NewLoader(a.logger, a.cfg.Ingest.MaxAudioPoints).Load(arg)
		name, points = p.Name, p.Points
	}
	if err != nil {
		return "", nil, err
	}

	if n := a.cfg.Ingest.Resample; n > 0 {
		points = shape.ResampleEvenly(points, n, true)
	}
	a.logger.Debug("path loaded", zap.String("name", name), zap.Int("points", len(points)))
	return name, points, nil
}
