// Package app holds the command handlers, cursors and view models shared by
// the terminal UI and the CLI. Nothing here touches the terminal: input is
// requested through a Prompter and output is plain view-model data.
package app

import (
	"log/slog"
	"time"

	"github.com/sadopc/aura/internal/store"
)

// Core wires one controller per tool to a loaded store. It is constructed
// once at startup and used only from the UI event loop.
type Core struct {
	Store      *store.Store
	Home       *Home
	Flashcards *Flashcards
	Notes      *Notes
	Todos      *Todos
	Focus      *Focus
}

func New(s *store.Store, p Prompter, logger *slog.Logger) *Core {
	if logger == nil {
		logger = slog.Default()
	}
	return &Core{
		Store:      s,
		Home:       NewHome(s, p, time.Now),
		Flashcards: NewFlashcards(s.Decks, p, logger),
		Notes:      NewNotes(s.Notes, p, logger),
		Todos:      NewTodos(s.Todos),
		Focus:      NewFocus(s.Timer, s.Focus, p),
	}
}
