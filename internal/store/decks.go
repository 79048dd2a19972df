package store

import "strings"

const DecksKey = "aura_flashcard_decks"

// Decks owns the flashcard deck collection. Cards exist only inside their
// deck; deleting a deck deletes its cards with it.
type Decks struct {
	c *Collection[Deck]
}

func newDecks(kv *KV) *Decks {
	return &Decks{c: newCollection(kv, DecksKey, func(d *Deck) {
		if d.Cards == nil {
			d.Cards = []Card{}
		}
	})}
}

func (d *Decks) Load()    { d.c.Load() }
func (d *Decks) Len() int { return d.c.Len() }

// List returns the decks in insertion order. The result is a copy.
func (d *Decks) List() []Deck {
	items := d.c.Items()
	for i := range items {
		items[i] = items[i].clone()
	}
	return items
}

func (d *Decks) Get(id string) (Deck, bool) {
	deck, ok := d.c.At(d.index(id))
	if !ok {
		return Deck{}, false
	}
	return deck.clone(), true
}

func (d *Decks) index(id string) int {
	if id == "" {
		return -1
	}
	return d.c.IndexFunc(func(deck Deck) bool { return deck.ID == id })
}

// Create appends a deck named name (trimmed) and returns its id. Blank names
// are rejected without touching storage. Duplicate names are allowed.
func (d *Decks) Create(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	deck := Deck{ID: newID(), Name: name, Cards: []Card{}}
	d.c.Append(deck)
	return deck.ID, true
}

func (d *Decks) Rename(id, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return d.c.Update(d.index(id), func(deck *Deck) { deck.Name = name })
}

func (d *Decks) Delete(id string) bool {
	return d.c.RemoveAt(d.index(id))
}

// AddCard appends a card to the deck and returns the new card's index.
func (d *Decks) AddCard(id, front, back string) (int, bool) {
	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" || back == "" {
		return 0, false
	}
	pos := -1
	ok := d.c.Update(d.index(id), func(deck *Deck) {
		deck.Cards = append(deck.Cards, Card{Front: front, Back: back})
		pos = len(deck.Cards) - 1
	})
	return pos, ok
}

func (d *Decks) EditCard(id string, i int, front, back string) bool {
	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" || back == "" {
		return false
	}
	deck, ok := d.c.At(d.index(id))
	if !ok || i < 0 || i >= len(deck.Cards) {
		return false
	}
	return d.c.Update(d.index(id), func(deck *Deck) {
		deck.Cards[i] = Card{Front: front, Back: back}
	})
}

func (d *Decks) DeleteCard(id string, i int) bool {
	deck, ok := d.c.At(d.index(id))
	if !ok || i < 0 || i >= len(deck.Cards) {
		return false
	}
	return d.c.Update(d.index(id), func(deck *Deck) {
		deck.Cards = append(deck.Cards[:i:i], deck.Cards[i+1:]...)
	})
}
