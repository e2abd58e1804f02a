package media

import (
	"errors"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestLoaderDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	points := []complex128{1, 1i, -1, -1i}

	loader := NewLoader(zaptest.NewLogger(t), 0)
	for _, name := range []string{"square.bin", "square.txt"} {
		path := filepath.Join(dir, name)
		if err := Save(path, points); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
		got, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if got.Name != "square" {
			t.Fatalf("Load(%s).Name = %q, want square", name, got.Name)
		}
		if len(got.Points) != len(points) {
			t.Fatalf("Load(%s) returned %d points", name, len(got.Points))
		}
	}
}

func TestLoaderUnsupported(t *testing.T) {
	loader := NewLoader(nil, 0)
	if _, err := loader.Load("picture.png"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load() error = %v, want ErrUnsupportedFormat", err)
	}
	if err := Save("picture.png", []complex128{1}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scope.wav")
	points := []complex128{
		complex(1, 0),
		complex(0, -1),
		complex(-0.5, 0.5),
		complex(0.25, 0.75),
	}
	if err := Save(path, points); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	got, info, err := DecodeAudio(f, FormatWAV, 0)
	if err != nil {
		t.Fatalf("DecodeAudio() error = %v", err)
	}
	if info.Channels != 2 || info.SampleRate != DefaultSampleRate {
		t.Fatalf("info = %+v", info)
	}
	if len(got) != len(points) {
		t.Fatalf("decoded %d points, want %d", len(got), len(points))
	}
	for i := range points {
		if d := cmplx.Abs(got[i] - points[i]); d > 1e-3 {
			t.Fatalf("point %d = %v, want %v", i, got[i], points[i])
		}
	}
}

func TestDecodeAudioDecimates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.wav")
	points := make([]complex128, 1000)
	for i := range points {
		points[i] = complex(float64(i)/1000, 0.5)
	}
	if err := Save(path, points); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loader := NewLoader(nil, 100)
	got, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Points) != 100 {
		t.Fatalf("Load() returned %d points, want 100", len(got.Points))
	}
	if got.Format != FormatWAV {
		t.Fatalf("Format = %v, want wav", got.Format)
	}
}

func TestEncodeWAVRejectsEmpty(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "empty.wav"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := EncodeWAV(f, nil, DefaultSampleRate); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("EncodeWAV() error = %v, want ErrNoPoints", err)
	}
}
