package app

import (
	"fmt"
	"time"

	"github.com/sadopc/aura/internal/store"
)

// Placeholders shown instead of an empty list or detail.
const (
	NoDecks       = "No decks yet. Press n to create one."
	NoCards       = "This deck has no cards yet. Press a to add one."
	NoNotes       = "No notes yet. Press n to write one."
	NoNoteMatches = "No notes match your search."
	NoTodos       = "Nothing to do. Press n to add a todo."
)

type DeckRow struct {
	ID    string
	Name  string
	Cards int
}

type DeckListView struct {
	Rows        []DeckRow
	Placeholder string // set when Rows is empty
}

// ViewerView is the open deck. Face holds the text of the visible side of
// the current card; Placeholder is set instead when the deck has no cards.
type ViewerView struct {
	Open        bool
	DeckID      string
	Title       string
	Index       int
	Total       int
	Flipped     bool
	Face        string
	Placeholder string
}

// Position renders the 1-based card position, e.g. "2 / 5".
func (v ViewerView) Position() string {
	if v.Total == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", v.Index+1, v.Total)
}

type NoteRow struct {
	ID      string
	Title   string
	Preview string
	Updated time.Time
}

type NoteListView struct {
	Filter      string
	Rows        []NoteRow
	Placeholder string
}

type EditorView struct {
	Open      bool
	IsNew     bool
	Title     string
	Text      string
	CanDelete bool
}

type TodoRow struct {
	Index int
	Text  string
	Done  bool
}

type TodoListView struct {
	Rows        []TodoRow
	Open        int
	Placeholder string
}

type FocusView struct {
	Mode         string
	ModeLabel    string
	State        string
	Clock        string
	Progress     float64
	TodayMinutes int
	Settings     store.TimerSettings
}

type HomeView struct {
	Greeting     string
	TodayMinutes int
	Decks        int
	Notes        int
	OpenTodos    int
	Week         []store.DayTotal
}
