package app

// DeckCursor is the open deck and the card shown in the viewer. It is never
// persisted.
type DeckCursor struct {
	ID      string
	Index   int
	Flipped bool
}

func (c *DeckCursor) Open(id string) {
	*c = DeckCursor{ID: id}
}

func (c *DeckCursor) Close() {
	*c = DeckCursor{}
}

func (c *DeckCursor) IsOpen() bool { return c.ID != "" }

// Flip turns the current card over. Nothing happens without cards.
func (c *DeckCursor) Flip(n int) {
	if n == 0 {
		return
	}
	c.Flipped = !c.Flipped
}

// Next and Prev wrap around a deck of n cards.
func (c *DeckCursor) Next(n int) {
	if n == 0 {
		return
	}
	c.Index = (c.Index + 1) % n
	c.Flipped = false
}

func (c *DeckCursor) Prev(n int) {
	if n == 0 {
		return
	}
	c.Index = (c.Index - 1 + n) % n
	c.Flipped = false
}

// Last moves to the final card.
func (c *DeckCursor) Last(n int) {
	c.Index = max(n-1, 0)
	c.Flipped = false
}

// Clamp pulls the index back into [0, n-1], or to 0 when the deck is empty.
func (c *DeckCursor) Clamp(n int) {
	if c.Index >= n {
		c.Index = n - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
}

// NoteCursor tracks the editor. An open cursor with no ID is a new, unsaved
// note.
type NoteCursor struct {
	ID   string
	open bool
}

func (c *NoteCursor) OpenExisting(id string) { *c = NoteCursor{ID: id, open: true} }
func (c *NoteCursor) OpenBlank()             { *c = NoteCursor{open: true} }
func (c *NoteCursor) Close()                 { *c = NoteCursor{} }
func (c *NoteCursor) IsOpen() bool           { return c.open }
func (c *NoteCursor) IsNew() bool            { return c.open && c.ID == "" }
