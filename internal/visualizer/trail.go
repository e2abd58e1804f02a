package visualizer

// Trail is a circular buffer of the most recent pen positions. It is owned
// by the UI model and is not safe for concurrent use.
type Trail struct {
	buf []complex128
	w   int // write position
	len int // current fill level
}

// NewTrail creates a trail holding at most size points.
func NewTrail(size int) *Trail {
	return &Trail{buf: make([]complex128, max(size, 1))}
}

// Push appends p, overwriting the oldest point if full.
func (t *Trail) Push(p complex128) {
	t.buf[t.w] = p
	t.w = (t.w + 1) % len(t.buf)
	t.len = min(t.len+1, len(t.buf))
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.len
}

// Cap returns the maximum number of stored points.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Points returns the stored points, oldest first.
func (t *Trail) Points() []complex128 {
	if t.len == 0 {
		return nil
	}
	out := make([]complex128, t.len)
	start := (t.w - t.len + len(t.buf)) % len(t.buf)
	for i := range t.len {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.w = 0
	t.len = 0
}
