package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("ParseLevel(loud) should fail")
	}
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("New() with a bad level should fail")
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clepi.log")
	logger, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("analyzed path", zap.Int("points", 8))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1: %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "analyzed path" || entry["points"] != float64(8) {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestVerboseFileLoggerKeepsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clepi.log")
	logger, err := New(Options{Level: "error", Verbose: true, File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("detail")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "detail") {
		t.Fatalf("verbose logger dropped debug entry: %q", data)
	}
}

func TestQuietLoggerIsNop(t *testing.T) {
	logger, err := New(Options{Quiet: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("quiet logger should discard everything")
	}
}
