package store

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

const (
	NotesKey = "aura_notes"

	// UntitledNote replaces a blank title on save.
	UntitledNote = "Untitled"
)

// Notes owns the note collection.
type Notes struct {
	c   *Collection[Note]
	now func() time.Time
}

func newNotes(kv *KV, now func() time.Time) *Notes {
	return &Notes{c: newCollection[Note](kv, NotesKey, nil), now: now}
}

func (n *Notes) Load()    { n.c.Load() }
func (n *Notes) Len() int { return n.c.Len() }

// List returns notes whose title contains filter (case-insensitive), most
// recently updated first. An empty filter matches everything.
func (n *Notes) List(filter string) []Note {
	q := strings.ToLower(strings.TrimSpace(filter))
	out := []Note{}
	for _, note := range n.c.Items() {
		if q == "" || strings.Contains(strings.ToLower(note.Title), q) {
			out = append(out, note)
		}
	}
	slices.SortStableFunc(out, func(a, b Note) int {
		return cmp.Compare(b.UpdatedAt, a.UpdatedAt)
	})
	return out
}

func (n *Notes) Get(id string) (Note, bool) {
	return n.c.At(n.index(id))
}

func (n *Notes) index(id string) int {
	if id == "" {
		return -1
	}
	return n.c.IndexFunc(func(note Note) bool { return note.ID == id })
}

// Create stores a new note and returns its id. A note with neither title nor
// content is rejected; a blank title becomes UntitledNote.
func (n *Notes) Create(title, content string) (string, bool) {
	title, content, ok := cleanNote(title, content)
	if !ok {
		return "", false
	}
	stamp := n.now().UnixMilli()
	note := Note{
		ID:        newID(),
		Title:     title,
		Content:   content,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	n.c.Append(note)
	return note.ID, true
}

// Update rewrites title and content in place. UpdatedAt always moves
// forward, even when the clock has not.
func (n *Notes) Update(id, title, content string) bool {
	title, content, ok := cleanNote(title, content)
	if !ok {
		return false
	}
	stamp := n.now().UnixMilli()
	return n.c.Update(n.index(id), func(note *Note) {
		note.Title = title
		note.Content = content
		note.UpdatedAt = max(stamp, note.UpdatedAt+1)
	})
}

func (n *Notes) Delete(id string) bool {
	return n.c.RemoveAt(n.index(id))
}

func cleanNote(title, content string) (string, string, bool) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" && content == "" {
		return "", "", false
	}
	if title == "" {
		title = UntitledNote
	}
	return title, content, true
}
