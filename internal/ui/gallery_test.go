package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/queue"
	"github.com/olivier-w/clepi/internal/shape"
)

func TestBuildGalleryDefaultsToShapes(t *testing.T) {
	drawings, err := BuildGallery(nil)
	if err != nil {
		t.Fatalf("BuildGallery() error = %v", err)
	}
	if len(drawings) != len(shape.Names()) {
		t.Fatalf("got %d drawings, want %d", len(drawings), len(shape.Names()))
	}
	for _, d := range drawings {
		if d.Shape == "" || d.State != queue.Pending {
			t.Fatalf("unexpected drawing %+v", d)
		}
	}
}

func TestBuildGalleryArgs(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "set.gallery")
	if err := os.WriteFile(manifest, []byte("Heart=shape:heart\ncat.txt\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	drawings, err := BuildGallery([]string{"shape:Star", "square.bin", manifest})
	if err != nil {
		t.Fatalf("BuildGallery() error = %v", err)
	}
	want := []queue.Drawing{
		{Name: "star", Shape: "star"},
		{Name: "square", Path: "square.bin"},
		{Name: "Heart", Shape: "heart"},
		{Name: "cat", Path: filepath.Join(dir, "cat.txt")},
	}
	if len(drawings) != len(want) {
		t.Fatalf("got %d drawings, want %d", len(drawings), len(want))
	}
	for i := range want {
		if drawings[i].Name != want[i].Name || drawings[i].Path != want[i].Path || drawings[i].Shape != want[i].Shape {
			t.Fatalf("drawing %d = %+v, want %+v", i, drawings[i], want[i])
		}
	}
}

func TestBuildGalleryRejectsUnknownFiles(t *testing.T) {
	_, err := BuildGallery([]string{"photo.png"})
	if !errors.Is(err, media.ErrUnsupportedFormat) {
		t.Fatalf("BuildGallery() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDrawingSourceResamples(t *testing.T) {
	src := drawingSource{shapePoints: 100, shapeSize: 4, resample: 32}
	name, points, err := src.load(queue.Drawing{Name: "circle", Shape: "circle"})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if name != "circle" || len(points) != 32 {
		t.Fatalf("load() = %q with %d points, want circle with 32", name, len(points))
	}

	_, _, err = src.load(queue.Drawing{Shape: "blob"})
	if !errors.Is(err, shape.ErrUnknownShape) {
		t.Fatalf("load() error = %v, want ErrUnknownShape", err)
	}
}

func TestDrawingSourceLoadsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.txt")
	if err := media.SaveText(path, []complex128{0, 1, 1i}); err != nil {
		t.Fatalf("SaveText() error = %v", err)
	}
	src := drawingSource{loader: media.NewLoader(nil, 0)}
	name, points, err := src.load(queue.Drawing{Name: "tri", Path: path})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if name != "tri" || len(points) != 3 {
		t.Fatalf("load() = %q with %d points", name, len(points))
	}
}
