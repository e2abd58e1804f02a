package media

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// DefaultMaxAudioPoints bounds how many frames an audio file contributes.
const DefaultMaxAudioPoints = 1024

// Path is a loaded drawing.
type Path struct {
	Name   string
	Points []complex128
	Format Format
}

// Loader reads path files of any supported format.
type Loader struct {
	logger         *zap.Logger
	maxAudioPoints int
}

// NewLoader creates a Loader. maxAudioPoints <= 0 selects the default.
func NewLoader(logger *zap.Logger, maxAudioPoints int) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxAudioPoints <= 0 {
		maxAudioPoints = DefaultMaxAudioPoints
	}
	return &Loader{logger: logger, maxAudioPoints: maxAudioPoints}
}

// Load reads the file at path, choosing the decoder from its extension.
func (l *Loader) Load(path string) (Path, error) {
	format := FormatForPath(path)
	p := Path{Name: ReadTitle(path), Format: format}

	var err error
	switch {
	case format == FormatBinary:
		p.Points, err = LoadBinary(path)
	case format == FormatText:
		p.Points, err = l.loadText(path)
	case format.IsAudio():
		p.Points, err = l.loadAudio(path, format)
	default:
		return Path{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Path{}, err
	}

	l.logger.Debug("loaded path",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("points", len(p.Points)),
	)
	return p, nil
}

func (l *Loader) loadText(path string) ([]complex128, error) {
	points, stats, err := LoadText(path, l.logger.With(zap.String("path", path)))
	if err != nil {
		return nil, err
	}
	if stats.Skipped > 0 {
		l.logger.Info("skipped malformed lines",
			zap.String("path", path),
			zap.Int("skipped", stats.Skipped),
		)
	}
	return points, nil
}

func (l *Loader) loadAudio(path string, format Format) ([]complex128, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio: %w", err)
	}
	defer f.Close()

	points, info, err := DecodeAudio(f, format, l.maxAudioPoints)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	l.logger.Debug("decoded audio path",
		zap.String("path", path),
		zap.Int("sample_rate", info.SampleRate),
		zap.Int("channels", info.Channels),
		zap.Int64("frames", info.Frames),
		zap.Int("stride", info.Stride),
	)
	return points, nil
}

// Save writes points to path as a binary path, text path or stereo WAV,
// chosen by extension.
func Save(path string, points []complex128) error {
	switch format := FormatForPath(path); format {
	case FormatBinary:
		return SaveBinary(path, points)
	case FormatText:
		return SaveText(path, points)
	case FormatWAV:
		return saveWAV(path, points)
	default:
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, format)
	}
}

func saveWAV(path string, points []complex128) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating audio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := EncodeWAV(f, points, DefaultSampleRate); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
