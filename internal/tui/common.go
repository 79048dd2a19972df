package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/aura/internal/export"
)

// viewState represents the currently active tab.
type viewState int

const (
	viewHome viewState = iota
	viewDecks
	viewNotes
	viewTodos
	viewFocus
	viewSettings
)

var viewNames = []string{"Home", "Decks", "Notes", "Todos", "Focus", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// focusTickMsg carries the generation of the countdown that scheduled it.
type focusTickMsg struct {
	gen uint64
}

type exportDoneMsg struct {
	format export.Format
	path   string
}

// --- Helpers ---

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func errorStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: true} }
}

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

// clampIndex keeps a list cursor inside [0, n).
func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
