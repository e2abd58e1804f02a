// Package shape generates built-in drawings and prepares point sequences for
// analysis: arc-length resampling, decimation, ordering and normalization.
package shape

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrUnknownShape is returned by Generate for a name it does not know.
var ErrUnknownShape = errors.New("shape: unknown shape")

// DefaultPoints and DefaultSize match the generated drawings of the gallery.
const (
	DefaultPoints = 400
	DefaultSize   = 6.0
)

// generator fills n points of a closed drawing spanning roughly size units.
type generator func(n int, size float64) []complex128

var generators = map[string]generator{
	"circle":    Circle,
	"square":    Square,
	"star":      Star,
	"heart":     Heart,
	"lissajous": Lissajous,
}

// Names returns the generated shape names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Generate returns n points of the named shape. Names are case-insensitive.
func Generate(name string, n int, size float64) ([]complex128, error) {
	gen, ok := generators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
	}
	if n <= 0 {
		return nil, fmt.Errorf("shape: point count must be positive, got %d", n)
	}
	return gen(n, size), nil
}

// Circle samples a circle of radius size/2 counterclockwise from angle 0.
func Circle(n int, size float64) []complex128 {
	r := size / 2
	points := make([]complex128, n)
	for i := range points {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		points[i] = complex(r*c, r*s)
	}
	return points
}

// Square walks an axis-aligned square of side size clockwise from its top
// left corner, with n/4 points per side. Points past the fourth side stay on
// the left edge.
func Square(n int, size float64) []complex128 {
	perSide := max(n/4, 1)
	half := size / 2
	points := make([]complex128, n)
	for i := range points {
		side := i / perSide
		t := float64(i%perSide) / float64(perSide)
		switch side {
		case 0: // top
			points[i] = complex(-half+t*size, half)
		case 1: // right
			points[i] = complex(half, half-t*size)
		case 2: // bottom
			points[i] = complex(half-t*size, -half)
		default: // left
			points[i] = complex(-half, -half+t*size)
		}
	}
	return points
}

// Star traces a five-pointed star with inner radius 0.4 of the outer one.
func Star(n int, size float64) []complex128 {
	const tips = 5
	outer := size / 2
	inner := outer * 0.4

	corners := make([]complex128, 2*tips)
	for i := range corners {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		s, c := math.Sincos(math.Pi/2 + math.Pi*float64(i)/tips)
		corners[i] = complex(r*c, r*s)
	}
	return ResampleEvenly(corners, n, true)
}

// Heart samples the classic parametric heart curve scaled to size.
func Heart(n int, size float64) []complex128 {
	scale := size / 34 // the curve spans 32 units across
	points := make([]complex128, n)
	for i := range points {
		t := 2 * math.Pi * float64(i) / float64(n)
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		points[i] = complex(scale*x, scale*y)
	}
	return points
}

// Lissajous samples the closed 3:2 Lissajous figure.
func Lissajous(n int, size float64) []complex128 {
	r := size / 2
	points := make([]complex128, n)
	for i := range points {
		t := 2 * math.Pi * float64(i) / float64(n)
		points[i] = complex(r*math.Sin(3*t+math.Pi/2), r*math.Sin(2*t))
	}
	return points
}
