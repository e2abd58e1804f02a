// Package queue holds the ordered gallery of drawings the animator cycles
// through.
package queue

import "math/rand"

// DrawingState is the load state of a drawing.
type DrawingState int

const (
	Pending DrawingState = iota
	Loading
	Ready
	Failed
)

func (s DrawingState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Drawing is a single item in the gallery. Exactly one of Path and Shape
// names its source.
type Drawing struct {
	Name   string
	Path   string
	Shape  string
	Points []complex128
	State  DrawingState
	Err    error
}

// Queue manages an ordered list of drawings. Navigation wraps around and
// skips drawings that failed to load. It is only mutated from Bubbletea's
// single-threaded Update loop.
type Queue struct {
	drawings     []Drawing
	current      int
	shuffleOrder []int // maps shuffle position → original drawing index
	shufflePos   int   // current position in shuffleOrder
	shuffled     bool
}

// New creates a Queue from the given drawings.
func New(drawings []Drawing) *Queue {
	return &Queue{drawings: drawings}
}

// Current returns a pointer to the selected drawing, or nil if empty.
func (q *Queue) Current() *Drawing {
	return q.Drawing(q.current)
}

// Drawing returns a pointer to the drawing at the given index, or nil if out
// of range.
func (q *Queue) Drawing(i int) *Drawing {
	if i < 0 || i >= len(q.drawings) {
		return nil
	}
	return &q.drawings[i]
}

// Len returns the total number of drawings.
func (q *Queue) Len() int {
	return len(q.drawings)
}

// CurrentIndex returns the zero-based index of the selected drawing.
func (q *Queue) CurrentIndex() int {
	return q.current
}

// Select makes drawing i current. Out-of-range indices and failed drawings
// are refused.
func (q *Queue) Select(i int) bool {
	d := q.Drawing(i)
	if d == nil || d.State == Failed {
		return false
	}
	q.current = i
	q.syncShufflePosition(i)
	return true
}

// Advance moves to the next drawing that has not failed, wrapping past the
// end. Returns false if no other drawing is available.
func (q *Queue) Advance() bool {
	return q.step(1)
}

// Previous moves to the previous drawing that has not failed, wrapping past
// the start. Returns false if no other drawing is available.
func (q *Queue) Previous() bool {
	return q.step(-1)
}

func (q *Queue) step(dir int) bool {
	order := q.order()
	n := len(order)
	if n <= 1 {
		return false
	}
	pos := q.position()
	for range n - 1 {
		pos = (pos + dir + n) % n
		idx := order[pos]
		if q.drawings[idx].State != Failed {
			q.current = idx
			if q.shuffled {
				q.shufflePos = pos
			}
			return true
		}
	}
	return false
}

// order returns navigation order as original indices.
func (q *Queue) order() []int {
	if q.shuffled {
		return q.shuffleOrder
	}
	order := make([]int, len(q.drawings))
	for i := range order {
		order[i] = i
	}
	return order
}

func (q *Queue) position() int {
	if q.shuffled {
		return q.shufflePos
	}
	return q.current
}

// NextIndex returns the index Advance would move to, or -1 if none.
func (q *Queue) NextIndex() int {
	order := q.order()
	n := len(order)
	if n <= 1 {
		return -1
	}
	pos := q.position()
	for range n - 1 {
		pos = (pos + 1) % n
		if idx := order[pos]; q.drawings[idx].State != Failed {
			return idx
		}
	}
	return -1
}

// NextLoadIndex returns the drawing that should be loaded ahead of time:
// the next one in navigation order when it is still pending. Returns -1 if
// none.
func (q *Queue) NextLoadIndex() int {
	i := q.NextIndex()
	if i < 0 || q.drawings[i].State != Pending {
		return -1
	}
	return i
}

// SetState sets the state of the drawing at the given index.
func (q *Queue) SetState(i int, state DrawingState) {
	if d := q.Drawing(i); d != nil {
		d.State = state
	}
}

// SetReady stores the loaded points of drawing i and marks it Ready. A
// non-empty name replaces the one the drawing was listed with.
func (q *Queue) SetReady(i int, name string, points []complex128) {
	d := q.Drawing(i)
	if d == nil {
		return
	}
	if name != "" {
		d.Name = name
	}
	d.Points = points
	d.State = Ready
	d.Err = nil
}

// SetFailed records why drawing i could not be loaded.
func (q *Queue) SetFailed(i int, err error) {
	d := q.Drawing(i)
	if d == nil {
		return
	}
	d.Points = nil
	d.State = Failed
	d.Err = err
}

// Available returns the number of drawings that have not failed.
func (q *Queue) Available() int {
	n := 0
	for i := range q.drawings {
		if q.drawings[i].State != Failed {
			n++
		}
	}
	return n
}

// IsShuffled returns whether shuffle mode is active.
func (q *Queue) IsShuffled() bool {
	return q.shuffled
}

// EnableShuffle activates shuffle mode. The current drawing stays at
// position 0 in the shuffle order; all other indices are randomized via
// Fisher-Yates.
func (q *Queue) EnableShuffle() {
	n := len(q.drawings)
	if n <= 1 {
		return
	}
	q.shuffled = true
	q.shuffleOrder = make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != q.current {
			q.shuffleOrder = append(q.shuffleOrder, i)
		}
	}
	for i := len(q.shuffleOrder) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		q.shuffleOrder[i], q.shuffleOrder[j] = q.shuffleOrder[j], q.shuffleOrder[i]
	}
	q.shuffleOrder = append([]int{q.current}, q.shuffleOrder...)
	q.shufflePos = 0
}

// DisableShuffle deactivates shuffle mode, keeping the current drawing.
func (q *Queue) DisableShuffle() {
	q.shuffled = false
	q.shuffleOrder = nil
	q.shufflePos = 0
}

// ToggleShuffle flips shuffle mode and reports the new setting.
func (q *Queue) ToggleShuffle() bool {
	if q.shuffled {
		q.DisableShuffle()
	} else {
		q.EnableShuffle()
	}
	return q.shuffled
}

// syncShufflePosition syncs shufflePos when the user jumps to a specific
// original drawing index.
func (q *Queue) syncShufflePosition(originalIdx int) {
	if !q.shuffled {
		return
	}
	for i, idx := range q.shuffleOrder {
		if idx == originalIdx {
			q.shufflePos = i
			return
		}
	}
}
