package visualizer

import (
	"math"
	"strings"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// Spectrum renders ranked epicycle amplitudes as vertical bars on a log
// scale, largest first.
type Spectrum struct {
	output string
}

// NewSpectrum creates a spectrum view.
func NewSpectrum() *Spectrum {
	return &Spectrum{}
}

// spectrumFloor is the smallest amplitude ratio that still shows a bar.
const spectrumFloor = 1e-4

// Update draws one bar per column for the first width amplitudes.
func (s *Spectrum) Update(amplitudes []float64, width, height int) {
	if width < 1 || height < 1 || len(amplitudes) == 0 {
		s.output = ""
		return
	}

	peak := 0.0
	for _, a := range amplitudes {
		peak = max(peak, a)
	}

	cols := min(width, len(amplitudes))
	levels := make([]float64, cols)
	if peak > 0 {
		logFloor := math.Log10(spectrumFloor)
		for i := range cols {
			ratio := amplitudes[i] / peak
			if ratio <= spectrumFloor {
				continue
			}
			levels[i] = 1 - math.Log10(ratio)/logFloor
		}
	}

	// Bar heights are counted in eighths of a cell so a level that lands on a
	// row boundary fills that row exactly.
	steps := len(barChars) - 1
	cells := make([]int, len(levels))
	for i, level := range levels {
		cells[i] = int(math.Round(level * float64(height*steps)))
		if level > 0 && cells[i] == 0 {
			cells[i] = 1
		}
	}

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		rowFromBottom := height - 1 - row
		for _, c := range cells {
			full, rem := c/steps, c%steps
			switch {
			case rowFromBottom < full:
				line.WriteRune(barChars[steps])
			case rowFromBottom == full && rem > 0:
				line.WriteRune(barChars[rem])
			default:
				line.WriteRune(' ')
			}
		}
		rows[row] = line.String()
	}
	s.output = strings.Join(rows, "\n")
}

// View returns the last rendered bars.
func (s *Spectrum) View() string {
	return s.output
}
