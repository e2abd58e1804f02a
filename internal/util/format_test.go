package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{125 * time.Second, "2:05"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatComplex(t *testing.T) {
	tests := []struct {
		in   complex128
		prec int
		want string
	}{
		{complex(1, 2), 2, "1.00+2.00i"},
		{complex(-0.5, -0.25), 3, "-0.500-0.250i"},
		{complex(-1e-9, 1e-9), 4, "0.0000+0.0000i"},
		{complex(3, 0), 0, "3+0i"},
	}
	for _, tt := range tests {
		if got := FormatComplex(tt.in, tt.prec); got != tt.want {
			t.Fatalf("FormatComplex(%v, %d) = %q, want %q", tt.in, tt.prec, got, tt.want)
		}
	}
}

func TestFormatSpeedAndPercent(t *testing.T) {
	if got := FormatSpeed(0.5); got != "0.50x" {
		t.Fatalf("FormatSpeed(0.5) = %q", got)
	}
	if got := FormatPercent(0.426); got != "43%" {
		t.Fatalf("FormatPercent(0.426) = %q", got)
	}
	if got := FormatPercent(1.7); got != "100%" {
		t.Fatalf("FormatPercent(1.7) = %q", got)
	}
}
