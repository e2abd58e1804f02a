package shape

import (
	"cmp"
	"math"
	"math/cmplx"
	"slices"
	"sort"
)

// NormalizedExtent is the width of the larger bounding-box side after
// Normalize.
const NormalizedExtent = 10.0

// ResampleEvenly returns m points spaced evenly by arc length along points.
// A closed path includes the segment from the last point back to the first,
// and sample k sits at fraction k/m of the length so the start is not
// repeated. Fewer than two points, or m <= 0, returns a copy of the input.
func ResampleEvenly(points []complex128, m int, closed bool) []complex128 {
	n := len(points)
	if n < 2 || m <= 0 {
		return slices.Clone(points)
	}

	segs := n - 1
	if closed {
		segs = n
	}

	// cum[i] is the arc length at the start of segment i.
	cum := make([]float64, segs+1)
	for i := range segs {
		cum[i+1] = cum[i] + cmplx.Abs(points[(i+1)%n]-points[i])
	}
	total := cum[segs]

	out := make([]complex128, m)
	if total <= 1e-12 {
		for k := range out {
			out[k] = points[0]
		}
		return out
	}

	for k := range out {
		d := float64(k) / float64(m) * total
		// Last segment starting at or before d.
		i := sort.Search(len(cum), func(j int) bool { return cum[j] > d }) - 1
		i = min(max(i, 0), segs-1)

		a, b := points[i], points[(i+1)%n]
		seg := cum[i+1] - cum[i]
		if seg <= 0 {
			seg = 1
		}
		u := (d - cum[i]) / seg
		out[k] = a + (b-a)*complex(u, 0)
	}
	return out
}

// Subsample keeps every (len/max)-th point when points exceeds max. The
// result can still be somewhat longer than max when len is not a multiple.
func Subsample(points []complex128, maxPoints int) []complex128 {
	if maxPoints <= 0 || len(points) <= maxPoints {
		return points
	}
	step := max(1, len(points)/maxPoints)
	out := make([]complex128, 0, (len(points)+step-1)/step)
	for i := 0; i < len(points); i += step {
		out = append(out, points[i])
	}
	return out
}

// Bounds returns the bounding box of points as its min and max corners.
func Bounds(points []complex128) (lo, hi complex128) {
	if len(points) == 0 {
		return 0, 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = min(minX, real(p)), max(maxX, real(p))
		minY, maxY = min(minY, imag(p)), max(maxY, imag(p))
	}
	return complex(minX, minY), complex(maxX, maxY)
}

// Normalize centers points on their bounding box and scales them so the
// larger side measures NormalizedExtent. A degenerate path is only centered.
func Normalize(points []complex128) []complex128 {
	if len(points) == 0 {
		return nil
	}
	lo, hi := Bounds(points)
	center := (lo + hi) / 2
	extent := max(real(hi)-real(lo), imag(hi)-imag(lo))
	scale := 1.0
	if extent > 0 {
		scale = NormalizedExtent / extent
	}

	out := make([]complex128, len(points))
	for i, p := range points {
		out[i] = (p - center) * complex(scale, 0)
	}
	return out
}

// GreedyOrder drops duplicate points and orders the rest by repeatedly
// stepping to the nearest unvisited point, starting from the lowest point
// (smallest imaginary part, then smallest real part). It is O(n²).
func GreedyOrder(points []complex128) []complex128 {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b complex128) int {
		if c := cmp.Compare(imag(a), imag(b)); c != 0 {
			return c
		}
		return cmp.Compare(real(a), real(b))
	})
	pts = slices.Compact(pts)
	if len(pts) == 0 {
		return pts
	}

	used := make([]bool, len(pts))
	order := make([]complex128, 0, len(pts))
	cur := 0
	used[cur] = true
	order = append(order, pts[cur])
	for range len(pts) - 1 {
		best, bestDist := -1, math.Inf(1)
		for j, p := range pts {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(p - pts[cur]); d < bestDist {
				best, bestDist = j, d
			}
		}
		used[best] = true
		order = append(order, pts[best])
		cur = best
	}
	return order
}

// ArcLength returns the length of the path, including the closing segment
// when closed is set.
func ArcLength(points []complex128, closed bool) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 1; i < n; i++ {
		total += cmplx.Abs(points[i] - points[i-1])
	}
	if closed {
		total += cmplx.Abs(points[0] - points[n-1])
	}
	return total
}
