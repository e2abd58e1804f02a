// Package epicycle evaluates ranked Fourier coefficients as a chain of
// rotating vectors and drives the animation clock that samples them.
package epicycle

import (
	"fmt"

	"github.com/olivier-w/clepi/internal/fourier"
)

// Trace holds the cumulative vector-tip positions for one time value:
// Points()[0] is the origin and Points()[k] is the sum of the first k
// epicycles. It is reused across frames and must be resized whenever the
// number of coefficients changes.
type Trace struct {
	points []complex128
}

// NewTrace returns a trace sized for k epicycles.
func NewTrace(k int) *Trace {
	t := &Trace{}
	t.Resize(k)
	return t
}

// Resize makes room for k epicycles (k+1 positions), reusing the existing
// backing array when it is large enough.
func (t *Trace) Resize(k int) {
	k = max(k, 0)
	if cap(t.points) >= k+1 {
		t.points = t.points[:k+1]
		return
	}
	t.points = make([]complex128, k+1)
}

// Len returns the number of positions, which is one more than the number of
// epicycles the trace is sized for.
func (t *Trace) Len() int {
	return len(t.points)
}

// Points returns the positions. The slice is owned by the trace and is
// overwritten by the next ReconstructAt.
func (t *Trace) Points() []complex128 {
	return t.points
}

// Tip returns the last position.
func (t *Trace) Tip() complex128 {
	if len(t.points) == 0 {
		return 0
	}
	return t.points[len(t.points)-1]
}

// ReconstructAt writes the partial sums of r at time t into trace and returns
// the tip:
//
//	p[0] = 0
//	p[j] = p[j-1] + A[j-1]·exp(i·(φ[j-1] + t·f[j-1]))
//
// trace must already be sized for r.Count() epicycles. The call does not
// allocate and does not modify r. Any real t is accepted; integer
// frequencies make the result periodic in 2π.
func ReconstructAt(r *fourier.Result, t float64, trace *Trace) complex128 {
	k := r.Count()
	if trace.Len() != k+1 {
		panic(fmt.Sprintf("epicycle: trace sized for %d epicycles, result has %d", trace.Len()-1, k))
	}

	var sum complex128
	trace.points[0] = 0
	for j := range k {
		c := r.At(j)
		sum += fourier.FromPolar(c.Amplitude, c.Phase+t*float64(c.Frequency))
		trace.points[j+1] = sum
	}
	return sum
}

// Reconstruct allocates a trace for r and evaluates it at t.
func Reconstruct(r *fourier.Result, t float64) (*Trace, complex128) {
	trace := NewTrace(r.Count())
	tip := ReconstructAt(r, t, trace)
	return trace, tip
}

// TipAt returns only the reconstructed point at time t.
func TipAt(r *fourier.Result, t float64) complex128 {
	var sum complex128
	for j := range r.Count() {
		c := r.At(j)
		sum += fourier.FromPolar(c.Amplitude, c.Phase+t*float64(c.Frequency))
	}
	return sum
}
