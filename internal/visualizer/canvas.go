package visualizer

import (
	"math"
	"strings"
)

// Layer orders what a braille cell shows when several things cover it.
// Higher layers win the cell's color.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerPreview
	LayerCircle
	LayerArm
	LayerTrail
	LayerTip
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	pattern uint8
	layer   Layer
	// shade is a 0..1 brightness/rank for the winning layer.
	shade float64
}

// Canvas is a dot grid drawn with Unicode Braille characters. Each terminal
// cell is a 2x4 dot block, giving 2x horizontal and 4x vertical resolution.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas creates a canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		c.cells = make([]cell, cols*rows)
	}
	c.Clear()
}

// Clear removes every dot.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// DotSize returns the canvas size in dots.
func (c *Canvas) DotSize() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int, layer Layer, shade float64) {
	w, h := c.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	cl := &c.cells[(y/4)*c.cols+x/2]
	cl.pattern |= 1 << brailleBits[x%2][y%4]
	if layer > cl.layer || (layer == cl.layer && shade > cl.shade) {
		cl.layer = layer
		cl.shade = shade
	}
}

// Dot reports whether the dot at (x, y) is on.
func (c *Canvas) Dot(x, y int) bool {
	w, h := c.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return c.cells[(y/4)*c.cols+x/2].pattern&(1<<brailleBits[x%2][y%4]) != 0
}

// Line draws a straight line between two dot coordinates.
func (c *Canvas) Line(x0, y0, x1, y1 float64, layer Layer, shade float64) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	steps := int(math.Ceil(max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		c.Set(int(math.Round(x0)), int(math.Round(y0)), layer, shade)
		return
	}
	// Very long lines only come from extreme zoom; clip the work.
	steps = min(steps, 4*(c.cols*2+c.rows*4))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.Set(int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), layer, shade)
	}
}

// Circle draws the outline of a circle centered at (cx, cy) with radius r,
// all in dots.
func (c *Canvas) Circle(cx, cy, r float64, layer Layer, shade float64) {
	if !finite(cx, cy, r) || r < 0.5 {
		return
	}
	// A multiple of four puts dots on both axes.
	steps := (min(max(8, int(2*math.Pi*r)), 720) + 3) &^ 3
	for i := range steps {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		c.Set(int(math.Round(cx+r*co)), int(math.Round(cy+r*s)), layer, shade)
	}
}

// Render returns the canvas as rows of braille characters, colored per cell
// by p. A nil pen renders without color.
func (c *Canvas) Render(p *pen) string {
	var out strings.Builder
	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			cl := c.cells[row*c.cols+col]
			if cl.pattern != 0 {
				p.ink(&out, cl.layer, cl.shade)
			}
			out.WriteRune(rune(0x2800 + int(cl.pattern)))
		}
		p.lift(&out)
	}
	return out.String()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
