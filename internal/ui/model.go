package ui

import (
	"fmt"
	"math/cmplx"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/olivier-w/clepi/internal/epicycle"
	"github.com/olivier-w/clepi/internal/fourier"
	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/queue"
	"github.com/olivier-w/clepi/internal/util"
	"github.com/olivier-w/clepi/internal/visualizer"
)

const (
	speedFactor   = 1.2
	statusTimeout = 5 * time.Second
	// chromeLines is the number of rows around the scene.
	chromeLines = 5
)

// Options configures the animator.
type Options struct {
	Epicycles      int
	Speed          float64
	FPS            int
	MaxTrail       int
	VisibleCircles int
	Zoom           float64

	ShapePoints int
	ShapeSize   float64
	Resample    int

	Loader *media.Loader
	Logger *zap.Logger
}

// Model is the Bubbletea model for the epicycle animator.
type Model struct {
	opts     Options
	logger   *zap.Logger
	queue    *queue.Queue
	source   drawingSource
	analyzer *fourier.Analyzer

	// epicycles is the requested count; the active count is clamped to the
	// drawing's Nyquist limit.
	epicycles int
	result    *fourier.Result
	resultIdx int
	seq       int
	analyzing bool

	sweep     *epicycle.Sweep
	trace     *epicycle.Trace
	trail     *visualizer.Trail
	scene     *visualizer.Scene
	spectrum  *visualizer.Spectrum
	samples   []float64
	spectral  bool
	repeat    RepeatMode
	// revolutions counts wraps not yet acted on by tour mode.
	revolutions int

	spinner  spinner.Model
	progress progress.Model

	width    int
	height   int
	quitting bool

	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// New creates an animator over the drawings in q.
func New(q *queue.Queue, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Loader == nil {
		opts.Loader = media.NewLoader(opts.Logger, 0)
	}
	opts.FPS = max(opts.FPS, 1)
	if opts.Speed <= 0 {
		opts.Speed = 0.5
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	p := progress.New(
		progress.WithScaledGradient("#5A56E0", "#EE6FF8"),
		progress.WithoutPercentage(),
	)

	return Model{
		opts:   opts,
		logger: opts.Logger,
		queue:  q,
		source: drawingSource{
			loader:      opts.Loader,
			shapePoints: opts.ShapePoints,
			shapeSize:   opts.ShapeSize,
			resample:    opts.Resample,
		},
		analyzer:  fourier.NewAnalyzer(fourier.WithLogger(opts.Logger)),
		epicycles: max(opts.Epicycles, 1),
		resultIdx: -1,
		sweep:     epicycle.NewSweep(opts.Speed),
		trace:     epicycle.NewTrace(0),
		trail:     visualizer.NewTrail(opts.MaxTrail),
		scene: visualizer.NewScene(visualizer.SceneConfig{
			FPS:            opts.FPS,
			Zoom:           opts.Zoom,
			VisibleCircles: opts.VisibleCircles,
		}),
		spectrum: visualizer.NewSpectrum(),
		spinner:  s,
		progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.opts.FPS),
		m.spinner.Tick,
		m.loadCmd(m.queue.CurrentIndex()),
		tea.SetWindowTitle(m.windowTitle()),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.advance(1 / float64(m.opts.FPS))
		m.scene.Tick()
		if m.statusMsg != "" && time.Since(m.statusTime) > statusTimeout {
			m.statusMsg = ""
		}
		cmds := []tea.Cmd{frameCmd(m.opts.FPS)}
		if m.repeat == RepeatTour && m.revolutions > 0 {
			m.revolutions = 0
			cmds = append(cmds, m.moveTo(m.queue.Advance()))
		}
		return m, tea.Batch(cmds...)

	case drawingLoadedMsg:
		return m.handleLoaded(msg)

	case analysisDoneMsg:
		return m.handleAnalysis(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-12, 10), 80)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.result.Release()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	if i, ok := digitIndex(msg); ok {
		if i == m.queue.CurrentIndex() {
			return m, nil
		}
		return m, m.moveTo(m.queue.Select(i))
	}

	switch msg.String() {
	case " ":
		m.sweep.TogglePause()
		return m, tea.SetWindowTitle(m.windowTitle())
	case "up", "k":
		m.sweep.SetSpeed(m.sweep.Speed() * speedFactor)
	case "down", "j":
		m.sweep.SetSpeed(m.sweep.Speed() / speedFactor)
	case "right", "l":
		return m, m.setEpicycles(epicycle.MoreEpicycles(m.activeEpicycles(), m.pointCount()))
	case "left", "h":
		return m, m.setEpicycles(epicycle.FewerEpicycles(m.activeEpicycles()))
	case "n", "tab":
		return m, m.moveTo(m.queue.Advance())
	case "p", "shift+tab":
		return m, m.moveTo(m.queue.Previous())
	case "r":
		m.restart()
	case "v":
		m.scene.TogglePreview()
	case "s":
		m.spectral = !m.spectral
	case "t":
		m.repeat = m.repeat.Next()
	case "z":
		if m.queue.ToggleShuffle() {
			m.setStatus("shuffle on", false)
		} else {
			m.setStatus("shuffle off", false)
		}
	case "+", "=":
		m.scene.ZoomIn()
	case "-", "_":
		m.scene.ZoomOut()
	}
	return m, nil
}

// advance moves the clock by dt and extends the trail with the tip at every
// sub-frame sample.
func (m *Model) advance(dt float64) {
	if m.result == nil {
		return
	}
	var wrapped bool
	m.samples, wrapped = m.sweep.Advance(dt, m.samples[:0])
	if wrapped {
		m.trail.Clear()
		m.revolutions++
		m.logger.Debug("revolution complete", zap.Int("drawing", m.resultIdx))
	}
	for _, t := range m.samples {
		m.trail.Push(epicycle.ReconstructAt(m.result, t, m.trace))
	}
	epicycle.ReconstructAt(m.result, m.sweep.Time(), m.trace)
}

func (m *Model) restart() {
	m.sweep.Reset()
	m.trail.Clear()
	m.revolutions = 0
	if m.result != nil {
		epicycle.ReconstructAt(m.result, 0, m.trace)
	}
}

// moveTo reacts to a gallery navigation. Loaded drawings are analyzed right
// away; pending ones are loaded first.
func (m *Model) moveTo(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	m.seq++ // any analysis in flight is for another drawing
	m.analyzing = false
	i := m.queue.CurrentIndex()
	d := m.queue.Current()
	cmds := []tea.Cmd{tea.SetWindowTitle(m.windowTitle())}
	switch d.State {
	case queue.Ready:
		cmds = append(cmds, m.analyzeCmd(i))
	case queue.Pending:
		cmds = append(cmds, m.loadCmd(i))
	}
	return tea.Batch(cmds...)
}

// loadCmd loads drawing i off the update loop.
func (m *Model) loadCmd(i int) tea.Cmd {
	d := m.queue.Drawing(i)
	if d == nil || d.State != queue.Pending {
		return nil
	}
	m.queue.SetState(i, queue.Loading)
	drawing, source := *d, m.source
	return func() tea.Msg {
		name, points, err := source.load(drawing)
		return drawingLoadedMsg{index: i, name: name, points: points, err: err}
	}
}

// analyzeCmd analyzes drawing i off the update loop.
func (m *Model) analyzeCmd(i int) tea.Cmd {
	d := m.queue.Drawing(i)
	if d == nil || d.State != queue.Ready {
		return nil
	}
	m.seq++
	m.analyzing = true
	seq, points, analyzer := m.seq, d.Points, m.analyzer
	k := epicycle.ClampEpicycles(m.epicycles, len(points))
	return func() tea.Msg {
		result, err := analyzer.Analyze(points, k)
		return analysisDoneMsg{seq: seq, index: i, result: result, err: err}
	}
}

func (m Model) handleLoaded(msg drawingLoadedMsg) (tea.Model, tea.Cmd) {
	current := msg.index == m.queue.CurrentIndex()
	if msg.err != nil {
		m.queue.SetFailed(msg.index, msg.err)
		m.logger.Warn("drawing failed to load", zap.Int("drawing", msg.index), zap.Error(msg.err))
		if !current {
			return m, nil
		}
		m.setStatus(fmt.Sprintf("cannot load %s: %v", m.queue.Drawing(msg.index).Name, msg.err), true)
		return m, m.moveTo(m.queue.Advance())
	}

	m.queue.SetReady(msg.index, msg.name, msg.points)
	if !current {
		return m, nil
	}
	return m, tea.Batch(m.analyzeCmd(msg.index), m.loadCmd(m.queue.NextLoadIndex()))
}

func (m Model) handleAnalysis(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		msg.result.Release()
		return m, nil
	}
	m.analyzing = false
	if msg.err != nil {
		m.queue.SetFailed(msg.index, msg.err)
		m.setStatus(fmt.Sprintf("cannot analyze %s: %v", m.queue.Drawing(msg.index).Name, msg.err), true)
		return m, m.moveTo(m.queue.Advance())
	}

	m.result.Release()
	m.result = msg.result
	m.resultIdx = msg.index
	m.trace.Resize(m.result.Count())
	m.scene.SetExtent(m.extent())
	m.restart()
	m.logger.Info("showing drawing",
		zap.Int("drawing", msg.index),
		zap.Int("points", m.result.Points()),
		zap.Int("epicycles", m.result.Count()),
	)
	return m, nil
}

// setEpicycles changes the requested count and re-analyzes the current
// drawing when the active count would change.
func (m *Model) setEpicycles(n int) tea.Cmd {
	if m.result == nil || n == m.activeEpicycles() {
		return nil
	}
	m.epicycles = n
	return m.analyzeCmd(m.queue.CurrentIndex())
}

func (m Model) activeEpicycles() int {
	return epicycle.ClampEpicycles(m.epicycles, m.pointCount())
}

func (m Model) pointCount() int {
	if d := m.queue.Current(); d != nil {
		return len(d.Points)
	}
	return 0
}

// extent is the world radius the scene fits to the view.
func (m Model) extent() float64 {
	var r float64
	if d := m.queue.Drawing(m.resultIdx); d != nil {
		for _, p := range d.Points {
			r = max(r, cmplx.Abs(p))
		}
	}
	if r == 0 {
		r = m.result.TotalAmplitude()
	}
	return r
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg = s
	m.statusErr = isErr
	m.statusTime = time.Now()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 30 {
		w = 60
	}
	h := m.height
	if h < chromeLines+4 {
		h = 24
	}
	sceneHeight := h - chromeLines

	var b strings.Builder

	// Header
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("clepi"))
	if d := m.queue.Current(); d != nil {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(d.Name))
	}
	if pos := renderGalleryPosition(m.queue.CurrentIndex(), m.queue.Len()); pos != "" {
		b.WriteString("  ")
		b.WriteString(subtitleStyle.Render(pos))
	}
	b.WriteByte('\n')

	// Scene
	b.WriteString(m.renderScene(w, sceneHeight))
	b.WriteByte('\n')

	// Revolution progress
	b.WriteString("  ")
	b.WriteString(m.progress.ViewAs(m.sweep.Progress()))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(util.FormatPercent(m.sweep.Progress())))
	b.WriteByte('\n')

	// Status
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteByte('\n')

	// Message
	b.WriteString("  ")
	switch {
	case m.analyzing:
		b.WriteString(m.spinner.View())
		b.WriteString(statusStyle.Render(" analyzing..."))
	case m.statusMsg != "" && m.statusErr:
		b.WriteString(errorStyle.Render(m.statusMsg))
	case m.statusMsg != "":
		b.WriteString(helpStyle.Render(m.statusMsg))
	}
	b.WriteByte('\n')

	b.WriteString("  ")
	b.WriteString(helpStyle.Render(helpText(m.queue.Len() > 1)))

	return b.String()
}

// renderScene draws the current frame. It mutates only the scene's render
// buffers, which the model owns.
func (m Model) renderScene(width, height int) string {
	if m.result == nil {
		return strings.Repeat("\n", height-1)
	}
	if m.spectral {
		amps := make([]float64, m.result.Count())
		for i := range amps {
			amps[i] = m.result.At(i).Amplitude
		}
		m.spectrum.Update(amps, width-4, height)
		return indentBlock(m.spectrum.View(), "  ")
	}

	frame := visualizer.Frame{
		Trace: m.trace.Points(),
		Trail: m.trail.Points(),
	}
	if d := m.queue.Drawing(m.resultIdx); d != nil {
		frame.Preview = d.Points
	}
	m.scene.Update(frame, width-4, height)
	return indentBlock(m.scene.View(), "  ")
}

func (m Model) statusLine() string {
	icon, text := "▶", "drawing"
	if m.sweep.Paused() {
		icon, text = "❚❚", "paused"
	}
	parts := []string{
		icon + "  " + text,
		renderEpicycleCount(m.result.Count(), epicycle.ClampEpicycles(m.pointCount(), m.pointCount())),
		"speed " + util.FormatSpeed(m.sweep.Speed()),
		"zoom " + util.FormatSpeed(m.scene.Zoom()),
	}
	if icon := m.repeat.Icon(); icon != "" {
		parts = append(parts, icon)
	}
	if m.queue.IsShuffled() {
		parts = append(parts, "[shuffle]")
	}
	if m.scene.Preview() {
		parts = append(parts, "[path]")
	}
	return strings.Join(parts, "  ")
}

func (m Model) windowTitle() string {
	name := "clepi"
	if d := m.queue.Current(); d != nil && d.Name != "" {
		name = d.Name + " · clepi"
	}
	if m.sweep.Paused() {
		return "⏸ " + name
	}
	return "▶ " + name
}

func indentBlock(s, prefix string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
