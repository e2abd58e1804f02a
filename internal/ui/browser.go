package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olivier-w/clepi/internal/media"
	"github.com/olivier-w/clepi/internal/shape"
)

// BrowserResult holds the outcome of the file browser. Args has the same form
// as the play command's arguments.
type BrowserResult struct {
	Args      []string
	Cancelled bool
}

type fileItem struct {
	name string
	ext  string
}

func (i fileItem) Title() string { return i.name }
func (i fileItem) Description() string {
	if media.IsGalleryExt(i.ext) {
		return i.ext + " gallery"
	}
	return i.ext
}
func (i fileItem) FilterValue() string { return i.name }

type shapeItem struct {
	name string
}

func (i shapeItem) Title() string       { return cases.Title(language.English).String(i.name) }
func (i shapeItem) Description() string { return "generated shape" }
func (i shapeItem) FilterValue() string { return i.name }

type allShapesItem struct{}

func (i allShapesItem) Title() string       { return "All shapes" }
func (i allShapesItem) Description() string { return "tour every generated shape" }
func (i allShapesItem) FilterValue() string { return "shapes" }

// BrowserModel is the Bubbletea model for the drawing browser screen.
type BrowserModel struct {
	list   list.Model
	result *BrowserResult
	err    error
}

// NewBrowser creates a browser over the drawings and galleries in dir plus
// the generated shapes.
func NewBrowser(dir string) BrowserModel {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BrowserModel{err: fmt.Errorf("cannot read directory: %w", err)}
	}

	items := []list.Item{allShapesItem{}}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !media.IsSupportedExt(ext) && !media.IsGalleryExt(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		items = append(items, fileItem{name: filepath.Join(dir, name), ext: filepath.Ext(e.Name())})
	}
	for _, name := range shape.Names() {
		items = append(items, shapeItem{name: name})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "clepi"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	return BrowserModel{list: l}
}

// HasError returns true if the browser could not be initialized.
func (m BrowserModel) HasError() bool {
	return m.err != nil
}

// Error returns the initialization error, if any.
func (m BrowserModel) Error() error {
	return m.err
}

// Result returns the browser result after the program finishes.
func (m BrowserModel) Result() BrowserResult {
	if m.result != nil {
		return *m.result
	}
	return BrowserResult{Cancelled: true}
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle("clepi")
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			var args []string
			switch item := m.list.SelectedItem().(type) {
			case allShapesItem:
				args = []string{}
			case shapeItem:
				args = []string{media.ShapePrefix + item.name}
			case fileItem:
				args = []string{item.name + item.ext}
			default:
				return m, nil
			}
			m.result = &BrowserResult{Args: args}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case "q", "esc", "ctrl+c":
			m.result = &BrowserResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	if m.err != nil {
		return "\n  " + headerStyle.Render("clepi") + "\n\n  " + errorStyle.Render(m.err.Error()) + "\n"
	}
	return m.list.View()
}
