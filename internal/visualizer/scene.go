package visualizer

import (
	"math/cmplx"

	"github.com/charmbracelet/lipgloss"
)

// DefaultVisibleCircles is how many of the largest epicycles get an outline.
const DefaultVisibleCircles = 40

// viewMargin keeps the fitted drawing off the canvas edge.
const viewMargin = 0.92

// Frame is what one animation frame shows, in world coordinates.
type Frame struct {
	// Trace holds the epicycle partial sums; Trace[0] is the origin and the
	// last element is the pen tip.
	Trace []complex128
	// Trail holds recent pen positions, oldest first.
	Trail []complex128
	// Preview is the source path, drawn faintly when enabled.
	Preview []complex128
}

// SceneConfig configures a Scene.
type SceneConfig struct {
	FPS            int
	Zoom           float64
	VisibleCircles int
}

// Scene renders epicycle frames onto a braille canvas.
type Scene struct {
	canvas         *Canvas
	zoom           zoomSpring
	extent         float64
	visibleCircles int
	showPreview    bool
	pen            *pen
	output         string
}

// NewScene creates a scene.
func NewScene(cfg SceneConfig) *Scene {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}
	if cfg.VisibleCircles <= 0 {
		cfg.VisibleCircles = DefaultVisibleCircles
	}
	return &Scene{
		canvas:         NewCanvas(1, 1),
		zoom:           newZoomSpring(cfg.FPS, cfg.Zoom),
		extent:         1,
		visibleCircles: cfg.VisibleCircles,
		pen:            newPen(lipgloss.ColorProfile()),
	}
}

// SetExtent sets the world radius that fills the view at zoom 1.
func (s *Scene) SetExtent(r float64) {
	if r <= 0 || !finite(r) {
		r = 1
	}
	s.extent = r
}

// Zoom returns the zoom the scene is easing towards.
func (s *Scene) Zoom() float64 {
	return s.zoom.target
}

// CurrentZoom returns the zoom the last Tick eased to.
func (s *Scene) CurrentZoom() float64 {
	return s.zoom.pos
}

// Tick advances the zoom easing by one animation frame.
func (s *Scene) Tick() {
	s.zoom.step()
}

// SetZoom sets the target zoom, clamped to [MinZoom, MaxZoom].
func (s *Scene) SetZoom(z float64) {
	s.zoom.set(z)
}

// ZoomIn and ZoomOut scale the target zoom by 1.25.
func (s *Scene) ZoomIn()  { s.zoom.set(s.zoom.target * 1.25) }
func (s *Scene) ZoomOut() { s.zoom.set(s.zoom.target / 1.25) }

// TogglePreview flips drawing of the source path and returns the new value.
func (s *Scene) TogglePreview() bool {
	s.showPreview = !s.showPreview
	return s.showPreview
}

// Preview reports whether the source path is drawn.
func (s *Scene) Preview() bool {
	return s.showPreview
}

// Update renders frame into a width x height cell area at the current zoom.
// It does not advance the zoom easing.
func (s *Scene) Update(frame Frame, width, height int) {
	if width < 2 || height < 1 {
		s.output = ""
		return
	}
	s.canvas.Resize(width, height)

	w, h := s.canvas.DotSize()
	scale := float64(min(w, h)) / 2 * viewMargin / s.extent * s.zoom.pos
	cx, cy := float64(w)/2, float64(h)/2
	toDots := func(p complex128) (float64, float64) {
		return cx + real(p)*scale, cy - imag(p)*scale
	}

	if s.showPreview {
		for _, p := range frame.Preview {
			x, y := toDots(p)
			s.canvas.Set(int(x), int(y), LayerPreview, 0)
		}
	}

	trace := frame.Trace
	circles := min(s.visibleCircles, max(len(trace)-1, 0))
	for j := range circles {
		x, y := toDots(trace[j])
		r := cmplx.Abs(trace[j+1]-trace[j]) * scale
		s.canvas.Circle(x, y, r, LayerCircle, 1-float64(j)/float64(circles))
	}
	for j := 1; j < len(trace); j++ {
		x0, y0 := toDots(trace[j-1])
		x1, y1 := toDots(trace[j])
		s.canvas.Line(x0, y0, x1, y1, LayerArm, 0)
	}

	trail := frame.Trail
	for i := 1; i < len(trail); i++ {
		fresh := float64(i) / float64(len(trail)-1)
		x0, y0 := toDots(trail[i-1])
		x1, y1 := toDots(trail[i])
		s.canvas.Line(x0, y0, x1, y1, LayerTrail, fresh)
	}

	if len(trace) > 0 {
		x, y := toDots(trace[len(trace)-1])
		for dx := range 2 {
			for dy := range 2 {
				s.canvas.Set(int(x)+dx, int(y)+dy, LayerTip, 1)
			}
		}
	}

	s.output = s.canvas.Render(s.pen)
}

// View returns the last rendered frame.
func (s *Scene) View() string {
	return s.output
}
