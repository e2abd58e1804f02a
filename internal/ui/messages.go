package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/clepi/internal/fourier"
)

type frameMsg time.Time

// drawingLoadedMsg carries the points of gallery drawing index.
type drawingLoadedMsg struct {
	index  int
	name   string
	points []complex128
	err    error
}

// analysisDoneMsg carries the coefficients for drawing index. seq identifies
// the request; replies to superseded requests are dropped.
type analysisDoneMsg struct {
	seq    int
	index  int
	result *fourier.Result
	err    error
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(fps, 1)), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
