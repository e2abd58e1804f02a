package ui

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/clepi/internal/queue"
)

func newTestModel(t *testing.T, drawings ...queue.Drawing) Model {
	t.Helper()
	if len(drawings) == 0 {
		drawings = []queue.Drawing{
			{Name: "square", Shape: "square"},
			{Name: "circle", Shape: "circle"},
		}
	}
	return New(queue.New(drawings), Options{
		Epicycles:   20,
		Speed:       0.5,
		FPS:         30,
		MaxTrail:    500,
		ShapePoints: 64,
		ShapeSize:   6,
	})
}

// drain runs cmd and feeds load and analysis replies back into the model
// until no work is left.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case drawingLoadedMsg, analysisDoneMsg:
			next, more := m.Update(msg)
			m = next.(Model)
			pending = append(pending, more)
		}
	}
	return m
}

func loadedModel(t *testing.T, drawings ...queue.Drawing) Model {
	t.Helper()
	m := newTestModel(t, drawings...)
	cmd := m.loadCmd(m.queue.CurrentIndex())
	m = drain(t, m, cmd)
	if m.result == nil {
		t.Fatal("expected an analysis result after loading")
	}
	return m
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func frame(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(frameMsg(time.Now()))
	return next.(Model), cmd
}

func TestLoadAnalyzesCurrentAndPreloadsNext(t *testing.T) {
	m := loadedModel(t)

	if got := m.queue.Drawing(0).State; got != queue.Ready {
		t.Fatalf("drawing 0 state = %v, want ready", got)
	}
	if got := m.queue.Drawing(1).State; got != queue.Ready {
		t.Fatalf("drawing 1 state = %v, want ready (preloaded)", got)
	}
	if m.resultIdx != 0 {
		t.Fatalf("resultIdx = %d, want 0", m.resultIdx)
	}
	if got := m.result.Count(); got != 20 {
		t.Fatalf("result count = %d, want 20", got)
	}
	if got := m.trace.Len(); got != 21 {
		t.Fatalf("trace length = %d, want 21", got)
	}
	if m.analyzing {
		t.Fatal("analysis should be finished")
	}
}

func TestFrameAdvancesSweepAndTrail(t *testing.T) {
	m := loadedModel(t)

	m, _ = frame(m)
	if got, want := m.sweep.Time(), 0.5/30; math.Abs(got-want) > 1e-12 {
		t.Fatalf("sweep time = %v, want %v", got, want)
	}
	if m.trail.Len() == 0 {
		t.Fatal("expected trail points after a frame")
	}
}

func TestPauseFreezesSweep(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(m, " ")
	if !m.sweep.Paused() {
		t.Fatal("expected paused sweep")
	}
	m, _ = frame(m)
	if m.sweep.Time() != 0 || m.trail.Len() != 0 {
		t.Fatalf("paused frame moved the sweep: t=%v trail=%d", m.sweep.Time(), m.trail.Len())
	}

	m, _ = press(m, " ")
	if m.sweep.Paused() {
		t.Fatal("expected resumed sweep")
	}
}

func TestSpeedKeys(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(m, "up")
	if got := m.sweep.Speed(); math.Abs(got-0.6) > 1e-12 {
		t.Fatalf("speed after up = %v, want 0.6", got)
	}
	m, _ = press(m, "j")
	if got := m.sweep.Speed(); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("speed after down = %v, want 0.5", got)
	}
}

func TestEpicycleKeysReanalyze(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(m, "right")
	if cmd == nil {
		t.Fatal("expected analysis command")
	}
	m = drain(t, m, cmd)
	if got := m.result.Count(); got != 30 {
		t.Fatalf("count after right = %d, want 30", got)
	}

	m, cmd = press(m, "l")
	m = drain(t, m, cmd)
	if got := m.result.Count(); got != 32 {
		t.Fatalf("count at the limit = %d, want 32", got)
	}

	m, cmd = press(m, "right")
	if cmd != nil {
		t.Fatal("expected no command at the epicycle limit")
	}

	m, cmd = press(m, "left")
	m = drain(t, m, cmd)
	if got := m.result.Count(); got != 22 {
		t.Fatalf("count after left = %d, want 22", got)
	}
	if got := m.trace.Len(); got != 23 {
		t.Fatalf("trace length = %d, want 23", got)
	}
}

func TestNextDrawingShowsPreloadedDrawing(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(m, "n")
	if m.queue.CurrentIndex() != 1 {
		t.Fatalf("current index = %d, want 1", m.queue.CurrentIndex())
	}
	m = drain(t, m, cmd)
	if m.resultIdx != 1 {
		t.Fatalf("resultIdx = %d, want 1", m.resultIdx)
	}
	if m.sweep.Time() != 0 {
		t.Fatal("expected the sweep to restart on a new drawing")
	}
}

func TestDigitSelectsDrawing(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	if m.queue.CurrentIndex() != 1 || m.resultIdx != 1 {
		t.Fatalf("current=%d result=%d, want 1", m.queue.CurrentIndex(), m.resultIdx)
	}

	_, cmd = press(m, "2")
	if cmd != nil {
		t.Fatal("selecting the current drawing should be a no-op")
	}
}

func TestStaleAnalysisIsDropped(t *testing.T) {
	m := loadedModel(t)
	before := m.result

	next, cmd := m.Update(analysisDoneMsg{seq: m.seq - 1, index: 1})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("expected no command for a stale reply")
	}
	if m.result != before || m.resultIdx != 0 {
		t.Fatal("stale reply replaced the current result")
	}
}

func TestFailedAnalysisSkipsDrawing(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.Update(analysisDoneMsg{seq: m.seq, index: 0, err: errors.New("boom")})
	m = next.(Model)
	if m.queue.Drawing(0).State != queue.Failed {
		t.Fatal("expected drawing 0 to be marked failed")
	}
	m = drain(t, m, cmd)
	if m.resultIdx != 1 {
		t.Fatalf("resultIdx = %d, want 1", m.resultIdx)
	}
}

func TestFailedLoadSkipsDrawing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ghost.bin")
	m := loadedModel(t,
		queue.Drawing{Name: "ghost", Path: missing},
		queue.Drawing{Name: "circle", Shape: "circle"},
	)

	if m.queue.Drawing(0).State != queue.Failed {
		t.Fatal("expected missing drawing to be marked failed")
	}
	if m.queue.CurrentIndex() != 1 || m.resultIdx != 1 {
		t.Fatalf("current=%d result=%d, want 1", m.queue.CurrentIndex(), m.resultIdx)
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "ghost") {
		t.Fatalf("status = %q (err=%v), want load error", m.statusMsg, m.statusErr)
	}
}

func TestTourModeAdvancesAfterRevolution(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(m, "t")
	if m.repeat != RepeatTour {
		t.Fatalf("repeat = %v, want tour", m.repeat)
	}

	m.sweep.SetSpeed(1000)
	m, _ = frame(m)
	if m.queue.CurrentIndex() != 1 {
		t.Fatalf("current index = %d, want 1 after a tour revolution", m.queue.CurrentIndex())
	}
	if m.revolutions != 0 {
		t.Fatalf("revolutions = %d, want 0", m.revolutions)
	}
}

func TestRepeatOneStaysOnDrawing(t *testing.T) {
	m := loadedModel(t)

	m.sweep.SetSpeed(1000)
	m, _ = frame(m)
	if m.queue.CurrentIndex() != 0 {
		t.Fatalf("current index = %d, want 0", m.queue.CurrentIndex())
	}
	if m.trail.Len() != 0 {
		t.Fatal("expected the trail to clear on wrap")
	}
}

func TestToggleKeys(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(m, "s")
	if !m.spectral {
		t.Fatal("expected spectrum view")
	}
	m, _ = press(m, "v")
	if !m.scene.Preview() {
		t.Fatal("expected path preview")
	}
	m, _ = press(m, "z")
	if !m.queue.IsShuffled() || m.statusMsg != "shuffle on" {
		t.Fatalf("shuffle=%v status=%q", m.queue.IsShuffled(), m.statusMsg)
	}
	zoom := m.scene.Zoom()
	m, _ = press(m, "+")
	if m.scene.Zoom() <= zoom {
		t.Fatal("expected zoom in")
	}
}

func TestRestartKey(t *testing.T) {
	m := loadedModel(t)
	m, _ = frame(m)
	m, _ = frame(m)

	m, _ = press(m, "r")
	if m.sweep.Time() != 0 || m.trail.Len() != 0 {
		t.Fatalf("restart left t=%v trail=%d", m.sweep.Time(), m.trail.Len())
	}
}

func TestViewFillsWindow(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	if got := lipgloss.Height(m.View()); got != 24 {
		t.Fatalf("empty view height = %d, want 24", got)
	}

	m = drain(t, m, m.loadCmd(0))
	m, _ = frame(m)
	view := m.View()
	if got := lipgloss.Height(view); got != 24 {
		t.Fatalf("view height = %d, want 24", got)
	}
	if !strings.Contains(view, "square") {
		t.Fatal("view should name the current drawing")
	}
	if !strings.Contains(view, "20 epicycles") {
		t.Fatalf("view should show the epicycle count:\n%s", view)
	}

	m, _ = press(m, "s")
	if got := lipgloss.Height(m.View()); got != 24 {
		t.Fatalf("spectrum view height = %d, want 24", got)
	}
}

func TestQuitClearsView(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestZoomEasesPerFrameNotPerRender(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(m, "+")
	for range 10 {
		_ = m.View()
	}
	next, _ := m.Update(spinner.TickMsg{})
	m = next.(Model)
	_ = m.View()
	if z := m.scene.CurrentZoom(); z != 1 {
		t.Fatalf("zoom eased to %v without a frame", z)
	}

	m, _ = frame(m)
	if z := m.scene.CurrentZoom(); z <= 1 || z >= 1.25 {
		t.Fatalf("zoom after one frame = %v, want between 1 and 1.25", z)
	}
}
