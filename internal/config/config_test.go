package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func load(t *testing.T, configFile string) *Config {
	t.Helper()
	v := viper.New()
	if err := Setup(v, configFile); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg := load(t, "")
	if cfg.Animation.Epicycles != 150 || cfg.Animation.Speed != 0.5 || cfg.Animation.FPS != 30 {
		t.Fatalf("animation defaults = %+v", cfg.Animation)
	}
	if cfg.Animation.MaxTrail != 2000 || cfg.Animation.VisibleCircles != 40 || cfg.Animation.Zoom != 1 {
		t.Fatalf("animation defaults = %+v", cfg.Animation)
	}
	if cfg.Ingest.MaxAudioPoints != 1024 || cfg.Ingest.Resample != 0 {
		t.Fatalf("ingest defaults = %+v", cfg.Ingest)
	}
	if cfg.Shape.Points != 400 || cfg.Shape.Size != 6 {
		t.Fatalf("shape defaults = %+v", cfg.Shape)
	}
	if cfg.Output.Format != "table" || cfg.Output.Precision != 4 || cfg.LogLevel != "info" {
		t.Fatalf("output defaults = %+v, log level %q", cfg.Output, cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clepi.yaml")
	content := "animation:\n  epicycles: 64\n  speed: 1.5\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CLEPI_ANIMATION_SPEED", "2.5")

	cfg := load(t, path)
	if cfg.Animation.Epicycles != 64 {
		t.Fatalf("epicycles = %d, want 64 from file", cfg.Animation.Epicycles)
	}
	if cfg.Animation.Speed != 2.5 {
		t.Fatalf("speed = %v, want 2.5 from env", cfg.Animation.Speed)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Output.Format)
	}
	if cfg.Shape.Points != 400 {
		t.Fatalf("unset keys should keep defaults, got shape.points = %d", cfg.Shape.Points)
	}
}

func TestExplicitConfigMissing(t *testing.T) {
	v := viper.New()
	if err := Setup(v, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Setup() with a missing explicit file should fail")
	}
}

func TestValidate(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	base, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"epicycles", func(c *Config) { c.Animation.Epicycles = 0 }},
		{"speed", func(c *Config) { c.Animation.Speed = 0 }},
		{"fps", func(c *Config) { c.Animation.FPS = 1000 }},
		{"trail", func(c *Config) { c.Animation.MaxTrail = 0 }},
		{"zoom", func(c *Config) { c.Animation.Zoom = -1 }},
		{"audio points", func(c *Config) { c.Ingest.MaxAudioPoints = 0 }},
		{"resample", func(c *Config) { c.Ingest.Resample = -5 }},
		{"shape size", func(c *Config) { c.Shape.Size = 0 }},
		{"format", func(c *Config) { c.Output.Format = "xml" }},
		{"precision", func(c *Config) { c.Output.Precision = 40 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() = nil, want error")
			}
		})
	}
}
