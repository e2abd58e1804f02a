package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/queue"
	"github.com/olivier-w/clepi/internal/ui"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [path|manifest|shape:<name>...]",
		Short: "Animate paths as epicycles",
		Long: `Animate one or more paths as a chain of epicycles.

With no arguments a browser lists the point files, audio files and gallery
manifests in the working directory along with the built-in shapes. Several
arguments form a gallery you can step through.

Examples:
  # Browse the working directory
  clepi play

  # Animate a built-in shape with 50 epicycles
  clepi play -k 50 shape:heart

  # Tour a gallery, logging to a file
  clepi play --log-file clepi.log drawings.gallery`,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(a, args)
		},
	}

	flags := cmd.Flags()
	flags.Float64("speed", 0.5, "radians of sweep per second")
	flags.Int("fps", 30, "frames per second")
	flags.Float64("zoom", 1.0, "initial zoom")
	flags.Int("trail", 2000, "maximum trail length in points")
	flags.Int("circles", 40, "number of circles drawn (0 draws all)")
	flags.Int("shape-points", 400, "points per generated shape")
	flags.Float64("shape-size", 6.0, "radius of generated shapes")

	a.bind(flags, map[string]string{
		"animation.speed":           "speed",
		"animation.fps":             "fps",
		"animation.zoom":            "zoom",
		"animation.max_trail":       "trail",
		"animation.visible_circles": "circles",
		"shape.points":              "shape-points",
		"shape.size":                "shape-size",
	})
	return cmd
}

func runPlay(a *app, args []string) error {
	if len(args) == 0 {
		browser := ui.NewBrowser(".")
		if browser.HasError() {
			return browser.Error()
		}
		finalModel, err := tea.NewProgram(browser, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		bm, ok := finalModel.(ui.BrowserModel)
		if !ok {
			return fmt.Errorf("unexpected model type from browser")
		}
		result := bm.Result()
		if result.Cancelled {
			return nil
		}
		args = result.Args
	}

	drawings, err := ui.BuildGallery(args)
	if err != nil {
		return err
	}
	a.logger.Info("starting animator", zap.Int("drawings", len(drawings)))

	anim := a.cfg.Animation
	m := ui.New(queue.New(drawings), ui.Options{
		Epicycles:      anim.Epicycles,
		Speed:          anim.Speed,
		FPS:            anim.FPS,
		MaxTrail:       anim.MaxTrail,
		VisibleCircles: anim.VisibleCircles,
		Zoom:           anim.Zoom,
		ShapePoints:    a.cfg.Shape.Points,
		ShapeSize:      a.cfg.Shape.Size,
		Resample:       a.cfg.Ingest.Resample,
		Loader:         media.NewLoader(a.logger, a.cfg.Ingest.MaxAudioPoints),
		Logger:         a.logger,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
