package visualizer

import (
	"fmt"
	"math"
	"strings"

	"github.com/muesli/termenv"
)

// rgb is a 24-bit color.
type rgb struct{ r, g, b uint8 }

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func mix(a, b rgb, t float64) rgb {
	t = clamp01(t)
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return rgb{ch(a.r, b.r), ch(a.g, b.g), ch(a.b, b.b)}
}

// hsv converts hue, saturation and value, each in [0, 1], to rgb. Hue wraps.
func hsv(h, s, v float64) rgb {
	s, v = clamp01(s), clamp01(v)
	ch := func(n float64) uint8 {
		k := math.Mod(n+6*h, 6)
		if k < 0 {
			k += 6
		}
		return uint8(math.Round(255 * (v - v*s*clamp01(min(k, 4-k)))))
	}
	return rgb{ch(5), ch(3), ch(1)}
}

// ramp maps t in [0, 1] onto evenly spaced stops.
func ramp(t float64, stops []rgb) rgb {
	seg := clamp01(t) * float64(len(stops)-1)
	i := min(int(seg), len(stops)-2)
	return mix(stops[i], stops[i+1], seg-float64(i))
}

var (
	heatStops = []rgb{{16, 25, 70}, {0, 174, 255}, {20, 255, 161}, {255, 230, 92}, {255, 80, 60}}

	previewColor = rgb{60, 110, 70}
	circleBase   = rgb{40, 50, 90}
	armColor     = rgb{190, 200, 220}
	tipColor     = rgb{255, 70, 70}
)

// layerColor colors canvas layers. Shade is the circle's rank for circles
// (1 = largest) and the point's freshness for the trail (1 = newest).
func layerColor(layer Layer, shade float64) (rgb, bool) {
	switch layer {
	case LayerPreview:
		return previewColor, true
	case LayerCircle:
		return mix(circleBase, ramp(0.2+0.3*shade, heatStops), 0.35+0.5*shade), true
	case LayerArm:
		return armColor, true
	case LayerTrail:
		return hsv(0.55+0.45*shade, 0.75, 0.35+0.65*shade), true
	case LayerTip:
		return tipColor, true
	default:
		return rgb{}, false
	}
}

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// pen writes foreground escapes for one color profile, skipping repeats. A
// nil pen draws nothing.
type pen struct {
	profile termenv.Profile
	seqs    map[rgb]string
	last    string
}

// newPen returns nil for profiles without color.
func newPen(profile termenv.Profile) *pen {
	if profile == termenv.Ascii {
		return nil
	}
	return &pen{profile: profile, seqs: make(map[rgb]string)}
}

func (p *pen) ink(sb *strings.Builder, layer Layer, shade float64) {
	if p == nil {
		return
	}
	c, ok := layerColor(layer, shade)
	if !ok {
		return
	}
	seq, ok := p.seqs[c]
	if !ok {
		if s := p.profile.Color(c.hex()).Sequence(false); s != "" {
			seq = termenv.CSI + s + "m"
		}
		p.seqs[c] = seq
	}
	if seq != p.last {
		sb.WriteString(seq)
		p.last = seq
	}
}

func (p *pen) lift(sb *strings.Builder) {
	if p == nil || p.last == "" {
		return
	}
	sb.WriteString(resetSeq)
	p.last = ""
}
