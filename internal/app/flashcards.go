package app

import (
	"log/slog"

	"github.com/sadopc/aura/internal/store"
)

// Flashcards handles deck and card commands and owns the deck cursor.
type Flashcards struct {
	decks  *store.Decks
	p      Prompter
	log    *slog.Logger
	Cursor DeckCursor
}

func NewFlashcards(decks *store.Decks, p Prompter, log *slog.Logger) *Flashcards {
	return &Flashcards{decks: decks, p: p, log: log}
}

// AddDeck asks for a name and creates the deck.
func (f *Flashcards) AddDeck() {
	ask(f.p, inputRequest("New deck",
		Field{Key: "name", Label: "Deck name", Placeholder: "e.g. Spanish"},
	), func(a Answer) {
		if id, ok := f.decks.Create(a.Text("name")); ok {
			f.log.Debug("deck created", "id", id)
		}
	})
}

func (f *Flashcards) RenameDeck(id string) {
	deck, ok := f.decks.Get(id)
	if !ok {
		return
	}
	ask(f.p, inputRequest("Rename deck",
		Field{Key: "name", Label: "Deck name", Value: deck.Name},
	), func(a Answer) {
		f.decks.Rename(id, a.Text("name"))
	})
}

// DeleteDeck asks for confirmation, then deletes the deck with its cards.
// The viewer closes if it was showing that deck.
func (f *Flashcards) DeleteDeck(id string) {
	deck, ok := f.decks.Get(id)
	if !ok {
		return
	}
	ask(f.p, confirmRequest("Delete deck?",
		`"`+deck.Name+`" and all of its cards will be removed.`,
	), func(Answer) {
		if f.decks.Delete(id) && f.Cursor.ID == id {
			f.Cursor.Close()
		}
	})
}

func (f *Flashcards) OpenDeck(id string) bool {
	if _, ok := f.decks.Get(id); !ok {
		return false
	}
	f.Cursor.Open(id)
	return true
}

func (f *Flashcards) CloseDeck() { f.Cursor.Close() }

func (f *Flashcards) cardCount() int {
	deck, ok := f.decks.Get(f.Cursor.ID)
	if !ok {
		return 0
	}
	return len(deck.Cards)
}

func (f *Flashcards) Flip() { f.Cursor.Flip(f.cardCount()) }
func (f *Flashcards) Next() { f.Cursor.Next(f.cardCount()) }
func (f *Flashcards) Prev() { f.Cursor.Prev(f.cardCount()) }

// AddCard asks for both sides of a new card in the open deck and shows it.
func (f *Flashcards) AddCard() {
	if !f.Cursor.IsOpen() {
		return
	}
	id := f.Cursor.ID
	ask(f.p, inputRequest("New card",
		Field{Key: "front", Label: "Front"},
		Field{Key: "back", Label: "Back"},
	), func(a Answer) {
		if _, ok := f.decks.AddCard(id, a.Text("front"), a.Text("back")); ok && f.Cursor.ID == id {
			f.Cursor.Last(f.cardCount())
		}
	})
}

func (f *Flashcards) EditCard() {
	deck, ok := f.decks.Get(f.Cursor.ID)
	if !ok || len(deck.Cards) == 0 {
		return
	}
	id, i := deck.ID, f.Cursor.Index
	card := deck.Cards[i]
	ask(f.p, inputRequest("Edit card",
		Field{Key: "front", Label: "Front", Value: card.Front},
		Field{Key: "back", Label: "Back", Value: card.Back},
	), func(a Answer) {
		f.decks.EditCard(id, i, a.Text("front"), a.Text("back"))
	})
}

// DeleteCard removes the current card after confirmation and keeps the
// cursor on a valid card.
func (f *Flashcards) DeleteCard() {
	deck, ok := f.decks.Get(f.Cursor.ID)
	if !ok || len(deck.Cards) == 0 {
		return
	}
	id, i := deck.ID, f.Cursor.Index
	ask(f.p, confirmRequest("Delete card?", deck.Cards[i].Front), func(Answer) {
		if f.decks.DeleteCard(id, i) && f.Cursor.ID == id {
			f.Cursor.Clamp(f.cardCount())
			f.Cursor.Flipped = false
		}
	})
}

func (f *Flashcards) DeckList() DeckListView {
	var v DeckListView
	for _, d := range f.decks.List() {
		v.Rows = append(v.Rows, DeckRow{ID: d.ID, Name: d.Name, Cards: len(d.Cards)})
	}
	if len(v.Rows) == 0 {
		v.Placeholder = NoDecks
	}
	return v
}

// Viewer builds the open-deck view. A cursor pointing at a deck that no
// longer exists reads as closed.
func (f *Flashcards) Viewer() ViewerView {
	deck, ok := f.decks.Get(f.Cursor.ID)
	if !ok {
		return ViewerView{}
	}
	v := ViewerView{
		Open:    true,
		DeckID:  deck.ID,
		Title:   deck.Name,
		Total:   len(deck.Cards),
		Flipped: f.Cursor.Flipped,
	}
	if v.Total == 0 {
		v.Placeholder = NoCards
		return v
	}
	v.Index = min(max(f.Cursor.Index, 0), v.Total-1)
	card := deck.Cards[v.Index]
	v.Face = card.Front
	if v.Flipped {
		v.Face = card.Back
	}
	return v
}
