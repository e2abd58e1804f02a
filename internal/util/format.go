package util

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatFloat formats v with a fixed number of decimals, never printing -0.
func FormatFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', max(precision, 0), 64)
	if s[0] == '-' {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
			return s[1:]
		}
	}
	return s
}

// FormatComplex formats z as "a+bi" with the given decimals.
func FormatComplex(z complex128, precision int) string {
	re := FormatFloat(real(z), precision)
	im := FormatFloat(imag(z), precision)
	if im[0] != '-' {
		im = "+" + im
	}
	return re + im + "i"
}

// FormatSpeed formats an animation speed multiplier, e.g. "0.50x".
func FormatSpeed(speed float64) string {
	return fmt.Sprintf("%.2fx", speed)
}

// FormatPercent formats a 0..1 fraction as a whole percentage.
func FormatPercent(f float64) string {
	f = min(max(f, 0), 1)
	return fmt.Sprintf("%d%%", int(math.Round(f*100)))
}
