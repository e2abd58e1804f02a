package visualizer

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func nan() float64 { return math.NaN() }

func plainScene() *Scene {
	s := NewScene(SceneConfig{FPS: 30, Zoom: 1, VisibleCircles: 4})
	s.pen = nil
	return s
}

func TestSceneRendersFrame(t *testing.T) {
	s := plainScene()
	s.SetExtent(2)
	s.Update(Frame{
		Trace: []complex128{0, 1, complex(1, 1)},
		Trail: []complex128{-1, complex(-1, -1), complex(0, -1)},
	}, 20, 6)

	view := s.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 6 {
		t.Fatalf("View() has %d rows, want 6", len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != 20 {
			t.Fatalf("row %d has %d cells, want 20", i, n)
		}
	}
	if strings.Trim(view, "⠀\n") == "" {
		t.Fatal("View() drew nothing")
	}
	if strings.Contains(view, "\x1b[") {
		t.Fatal("colorless scene emitted escape codes")
	}
}

func TestSceneTooSmall(t *testing.T) {
	s := plainScene()
	s.Update(Frame{Trace: []complex128{0, 1}}, 1, 1)
	if s.View() != "" {
		t.Fatalf("View() = %q, want empty", s.View())
	}
}

func TestScenePreviewToggle(t *testing.T) {
	s := plainScene()
	frame := Frame{Trace: []complex128{0}, Preview: []complex128{complex(0.5, 0.5)}}

	s.Update(frame, 10, 4)
	hidden := s.View()
	if !s.TogglePreview() || !s.Preview() {
		t.Fatal("TogglePreview() should enable the preview")
	}
	s.Update(frame, 10, 4)
	if s.View() == hidden {
		t.Fatal("preview did not change the frame")
	}
}

func TestSceneZoomClamps(t *testing.T) {
	s := plainScene()
	s.SetZoom(100)
	if s.Zoom() != MaxZoom {
		t.Fatalf("Zoom() = %v, want %v", s.Zoom(), MaxZoom)
	}
	for range 20 {
		s.ZoomOut()
	}
	if s.Zoom() != MinZoom {
		t.Fatalf("Zoom() = %v, want %v", s.Zoom(), MinZoom)
	}
	s.SetZoom(1)
	s.ZoomIn()
	if s.Zoom() != 1.25 {
		t.Fatalf("Zoom() = %v, want 1.25", s.Zoom())
	}
}

func TestSceneZoomEases(t *testing.T) {
	s := plainScene()
	s.SetZoom(2)
	first := s.zoom.step()
	if first <= 1 || first >= 2 {
		t.Fatalf("first zoom step = %v, want between 1 and 2", first)
	}
	for range 300 {
		s.zoom.step()
	}
	if math.Abs(s.zoom.pos-2) > 1e-3 {
		t.Fatalf("zoom settled at %v, want 2", s.zoom.pos)
	}
}

func TestScenePaletteCoversLayers(t *testing.T) {
	for _, layer := range []Layer{LayerPreview, LayerCircle, LayerArm, LayerTrail, LayerTip} {
		if _, ok := layerColor(layer, 0.5); !ok {
			t.Fatalf("no color for layer %d", layer)
		}
	}
	if _, ok := layerColor(LayerNone, 0); ok {
		t.Fatal("LayerNone should not be colored")
	}
}

func TestSceneZoomEasesOnlyOnTick(t *testing.T) {
	s := plainScene()
	s.SetExtent(1)
	frame := Frame{Trace: []complex128{0, 0.5}}

	s.SetZoom(2)
	s.Update(frame, 20, 10)
	before := s.View()
	for range 5 {
		s.Update(frame, 20, 10)
	}
	if s.CurrentZoom() != 1 {
		t.Fatalf("zoom moved to %v without a tick", s.CurrentZoom())
	}
	if s.View() != before {
		t.Fatal("repeated renders of the same frame differ")
	}

	s.Tick()
	if z := s.CurrentZoom(); z <= 1 || z >= 2 {
		t.Fatalf("zoom after one tick = %v, want between 1 and 2", z)
	}
}
