package store

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Store bundles one document store per tool over a shared backend. It is
// built once at startup and is not safe for concurrent use; every caller
// runs on the UI event loop.
type Store struct {
	backend Backend
	kv      *KV

	Decks   *Decks
	Notes   *Notes
	Todos   *Todos
	Timer   *Timer
	Focus   *FocusLog
	Profile *Profile
}

type Options struct {
	Logger        *slog.Logger
	TimerDefaults TimerSettings
	// Now is the clock used for note timestamps and day keys.
	Now func() time.Time
}

// New wires the document stores onto b and loads every document.
func New(b Backend, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	kv := NewKV(b, opts.Logger)
	s := &Store{
		backend: b,
		kv:      kv,
		Decks:   newDecks(kv),
		Notes:   newNotes(kv, now),
		Todos:   newTodos(kv),
		Timer:   newTimer(kv, opts.TimerDefaults),
		Focus:   newFocusLog(kv, now),
		Profile: &Profile{kv: kv},
	}
	s.Load()
	return s
}

// Open opens the named backend at path and loads the store from it.
func Open(kind, path string, opts Options) (*Store, error) {
	b, err := OpenBackend(kind, path)
	if err != nil {
		return nil, err
	}
	return New(b, opts), nil
}

// NewMemory creates a store over an in-memory backend for testing.
func NewMemory() (*Store, error) {
	b, err := NewMemoryBackend()
	if err != nil {
		return nil, err
	}
	return New(b, Options{}), nil
}

// Load re-reads every document from the backend.
func (s *Store) Load() {
	s.Decks.Load()
	s.Notes.Load()
	s.Todos.Load()
	s.Timer.Load()
	s.Focus.Load()
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
