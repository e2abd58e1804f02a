package media

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// TextStats summarizes a text path read.
type TextStats struct {
	Lines   int
	Points  int
	Skipped int
}

// ReadText decodes a text path with one "real,imaginary" record per line.
// Blank lines and lines starting with '#' are ignored. A line that does not
// parse is logged and skipped. Zero valid records is ErrNoPoints.
func ReadText(r io.Reader, logger *zap.Logger) ([]complex128, TextStats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var stats TextStats
	points := make([]complex128, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := ParseRecord(line)
		if err != nil {
			stats.Skipped++
			logger.Warn("skipping unparsable line",
				zap.Int("line", stats.Lines),
				zap.String("text", line),
				zap.Error(err),
			)
			continue
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scanning text path: %w", err)
	}

	stats.Points = len(points)
	if len(points) == 0 {
		return nil, stats, ErrNoPoints
	}
	return points, stats, nil
}

// ParseRecord parses one "real,imaginary" record. Whitespace around either
// number is ignored. The imaginary part is the longest number at the start
// of the text after the comma; anything after it is ignored, so "1,2,3"
// reads as 1+2i.
func ParseRecord(line string) (complex128, error) {
	re, rest, ok := strings.Cut(line, ",")
	if !ok {
		return 0, fmt.Errorf("%w: missing comma", ErrMalformedRecord)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: real part: %v", ErrMalformedRecord, err)
	}
	y, ok := leadingFloat(strings.TrimLeft(rest, " \t"))
	if !ok {
		return 0, fmt.Errorf("%w: imaginary part %q", ErrMalformedRecord, rest)
	}
	return complex(x, y), nil
}

// leadingFloat parses the longest prefix of s that is a decimal number.
func leadingFloat(s string) (float64, bool) {
	n := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	})
	if n < 0 {
		n = len(s)
	}
	for ; n > 0; n-- {
		if v, err := strconv.ParseFloat(s[:n], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// WriteText encodes points as text records, preceded by a comment header.
// Values use the shortest representation that parses back exactly.
func WriteText(w io.Writer, points []complex128) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d points (real,imaginary)\n", len(points))
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(real(p), 'g', -1, 64))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatFloat(imag(p), 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// LoadText reads a text path file.
func LoadText(path string, logger *zap.Logger) ([]complex128, TextStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, TextStats{}, fmt.Errorf("opening path: %w", err)
	}
	defer f.Close()

	points, stats, err := ReadText(f, logger)
	if err != nil {
		return nil, stats, fmt.Errorf("reading %s: %w", path, err)
	}
	return points, stats, nil
}

// SaveText writes points to a text path file.
func SaveText(path string, points []complex128) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating path: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteText(f, points); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
