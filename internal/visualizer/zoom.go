package visualizer

import "github.com/charmbracelet/harmonica"

const (
	MinZoom = 0.25
	MaxZoom = 8.0
)

// zoomSpring eases the displayed zoom towards its target.
type zoomSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newZoomSpring(fps int, zoom float64) zoomSpring {
	zoom = clampZoom(zoom)
	return zoomSpring{
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 6.0, 0.9),
		pos:    zoom,
		target: zoom,
	}
}

func (z *zoomSpring) set(target float64) {
	z.target = clampZoom(target)
}

func (z *zoomSpring) step() float64 {
	z.pos, z.vel = z.spring.Update(z.pos, z.vel, z.target)
	return z.pos
}

func clampZoom(z float64) float64 {
	return min(max(z, MinZoom), MaxZoom)
}
