package epicycle

import "math"

// Period is one full revolution of the epicycle chain.
const Period = 2 * math.Pi

const (
	// trailStep is the target spacing of trail samples in time units.
	trailStep = 0.02
	// maxSubSteps caps the trail samples produced by a single frame.
	maxSubSteps = 20
)

// Sweep is the animation clock. It advances time by dt·speed per frame and
// yields evenly spaced sub-frame sample times so the trail stays smooth at
// any speed.
type Sweep struct {
	speed  float64
	t      float64
	paused bool
}

// NewSweep creates a clock at t = 0.
func NewSweep(speed float64) *Sweep {
	return &Sweep{speed: speed}
}

// Time returns the current time in [0, Period].
func (s *Sweep) Time() float64 { return s.t }

// Speed returns the time units advanced per second.
func (s *Sweep) Speed() float64 { return s.speed }

// SetSpeed changes the rate. Non-positive values are ignored.
func (s *Sweep) SetSpeed(speed float64) {
	if speed > 0 {
		s.speed = speed
	}
}

// Paused reports whether Advance is currently a no-op.
func (s *Sweep) Paused() bool { return s.paused }

// TogglePause flips the paused state.
func (s *Sweep) TogglePause() { s.paused = !s.paused }

// Reset rewinds to t = 0.
func (s *Sweep) Reset() { s.t = 0 }

// Progress returns the fraction of the current revolution completed.
func (s *Sweep) Progress() float64 {
	return math.Min(s.t/Period, 1)
}

// Advance moves the clock by dt seconds. It appends the sub-frame sample
// times for the trail to dst and returns it. When the clock passes Period it
// restarts at 0, returns dst unchanged and reports wrapped so the caller can
// clear its trail.
func (s *Sweep) Advance(dt float64, dst []float64) (samples []float64, wrapped bool) {
	if s.paused || dt <= 0 {
		return dst, false
	}

	prev := s.t
	step := dt * s.speed
	s.t += step
	if s.t > Period {
		s.t = 0
		return dst, true
	}

	n := SubSteps(step)
	for i := range n {
		dst = append(dst, prev+step*float64(i+1)/float64(n))
	}
	return dst, false
}

// SubSteps returns how many trail samples cover a time step: one per
// trailStep plus one, at most maxSubSteps.
func SubSteps(step float64) int {
	if step <= 0 {
		return 0
	}
	return min(int(step/trailStep)+1, maxSubSteps)
}
