package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// digitIndex maps keys 1-9 to gallery indices 0-8.
func digitIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

func helpText(hasGallery bool) string {
	s := "space pause  ↑/↓ speed  ←/→ epicycles  +/- zoom  v path  s spectrum  r restart"
	if hasGallery {
		s += "  n/p drawing  1-9 pick  t tour  z shuffle"
	}
	s += "  q quit"
	return s
}
