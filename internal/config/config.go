// Package config loads clepi settings from flags, environment, a YAML file
// and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CLEPI_ANIMATION_SPEED.
const EnvPrefix = "CLEPI"

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose  bool   `mapstructure:"verbose"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	Animation AnimationConfig `mapstructure:"animation"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Shape     ShapeConfig     `mapstructure:"shape"`
	Output    OutputConfig    `mapstructure:"output"`
}

// AnimationConfig contains animator settings
type AnimationConfig struct {
	Epicycles      int     `mapstructure:"epicycles"`
	Speed          float64 `mapstructure:"speed"`
	FPS            int     `mapstructure:"fps"`
	MaxTrail       int     `mapstructure:"max_trail"`
	VisibleCircles int     `mapstructure:"visible_circles"`
	Zoom           float64 `mapstructure:"zoom"`
}

// IngestConfig contains path loading settings
type IngestConfig struct {
	MaxAudioPoints int `mapstructure:"max_audio_points"`
	// Resample evenly resamples every loaded path to this many points; 0 keeps
	// the file's own points.
	Resample int `mapstructure:"resample"`
}

// ShapeConfig contains generated shape settings
type ShapeConfig struct {
	Points int     `mapstructure:"points"`
	Size   float64 `mapstructure:"size"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

// Output formats accepted by the analyze command.
var OutputFormats = []string{"table", "json", "yaml"}

// SetDefaults sets default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetDefault("animation.epicycles", 150)
	v.SetDefault("animation.speed", 0.5)
	v.SetDefault("animation.fps", 30)
	v.SetDefault("animation.max_trail", 2000)
	v.SetDefault("animation.visible_circles", 40)
	v.SetDefault("animation.zoom", 1.0)

	v.SetDefault("ingest.max_audio_points", 1024)
	v.SetDefault("ingest.resample", 0)

	v.SetDefault("shape.points", 400)
	v.SetDefault("shape.size", 6.0)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.precision", 4)
}

// Setup points v at the config file and environment. An empty configFile
// searches $HOME/.config/clepi and the working directory for clepi.yaml.
// A missing default file is not an error; a missing explicit one is.
func Setup(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "clepi"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("clepi")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error
	if c.Animation.Epicycles < 1 {
		errs = append(errs, fmt.Errorf("animation.epicycles must be at least 1"))
	}
	if c.Animation.Speed <= 0 {
		errs = append(errs, fmt.Errorf("animation.speed must be positive"))
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		errs = append(errs, fmt.Errorf("animation.fps must be between 1 and 240"))
	}
	if c.Animation.MaxTrail < 1 {
		errs = append(errs, fmt.Errorf("animation.max_trail must be at least 1"))
	}
	if c.Animation.VisibleCircles < 0 {
		errs = append(errs, fmt.Errorf("animation.visible_circles cannot be negative"))
	}
	if c.Animation.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("animation.zoom must be positive"))
	}
	if c.Ingest.MaxAudioPoints < 1 {
		errs = append(errs, fmt.Errorf("ingest.max_audio_points must be at least 1"))
	}
	if c.Ingest.Resample < 0 {
		errs = append(errs, fmt.Errorf("ingest.resample cannot be negative"))
	}
	if c.Shape.Points < 1 {
		errs = append(errs, fmt.Errorf("shape.points must be at least 1"))
	}
	if c.Shape.Size <= 0 {
		errs = append(errs, fmt.Errorf("shape.size must be positive"))
	}
	if !isOutputFormat(c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of %s", strings.Join(OutputFormats, ", ")))
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		errs = append(errs, fmt.Errorf("output.precision must be between 0 and 17"))
	}
	return errors.Join(errs...)
}

func isOutputFormat(f string) bool {
	for _, known := range OutputFormats {
		if f == known {
			return true
		}
	}
	return false
}
