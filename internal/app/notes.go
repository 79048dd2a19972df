package app

import (
	"log/slog"

	"github.com/sadopc/aura/internal/richtext"
	"github.com/sadopc/aura/internal/store"
)

const previewRunes = 80

// Notes handles the note list, search filter and editor.
type Notes struct {
	notes  *store.Notes
	p      Prompter
	log    *slog.Logger
	Cursor NoteCursor
	filter string
}

func NewNotes(notes *store.Notes, p Prompter, log *slog.Logger) *Notes {
	return &Notes{notes: notes, p: p, log: log}
}

// SetFilter replaces the search text. The list is recomputed from the full
// collection on every call to NoteList.
func (n *Notes) SetFilter(q string) { n.filter = q }
func (n *Notes) Filter() string     { return n.filter }

func (n *Notes) NoteList() NoteListView {
	v := NoteListView{Filter: n.filter}
	for _, note := range n.notes.List(n.filter) {
		v.Rows = append(v.Rows, NoteRow{
			ID:      note.ID,
			Title:   note.Title,
			Preview: richtext.Preview(note.Content, previewRunes),
			Updated: note.Updated(),
		})
	}
	if len(v.Rows) == 0 {
		v.Placeholder = NoNotes
		if n.notes.Len() > 0 {
			v.Placeholder = NoNoteMatches
		}
	}
	return v
}

func (n *Notes) New() { n.Cursor.OpenBlank() }

func (n *Notes) Open(id string) bool {
	if _, ok := n.notes.Get(id); !ok {
		return false
	}
	n.Cursor.OpenExisting(id)
	return true
}

func (n *Notes) Close() { n.Cursor.Close() }

// Editor returns the open note with its body as editable text.
func (n *Notes) Editor() EditorView {
	if !n.Cursor.IsOpen() {
		return EditorView{}
	}
	if n.Cursor.IsNew() {
		return EditorView{Open: true, IsNew: true}
	}
	note, ok := n.notes.Get(n.Cursor.ID)
	if !ok {
		return EditorView{}
	}
	return EditorView{
		Open:      true,
		Title:     note.Title,
		Text:      richtext.ToText(note.Content),
		CanDelete: true,
	}
}

// Markdown renders a saved note's body as markdown for read-only display.
func (n *Notes) Markdown(id string) string {
	note, ok := n.notes.Get(id)
	if !ok {
		return ""
	}
	md, err := richtext.ToMarkdown(note.Content)
	if err != nil {
		n.log.Warn("note markdown", "id", id, "err", err)
		return richtext.ToText(note.Content)
	}
	return md
}

// Save stores the editor contents. A new note is created on its first save
// and the editor stays on it; later saves update it in place.
func (n *Notes) Save(title, text string) bool {
	if !n.Cursor.IsOpen() {
		return false
	}
	content := richtext.FromText(text)
	if n.Cursor.IsNew() {
		id, ok := n.notes.Create(title, content)
		if ok {
			n.Cursor.OpenExisting(id)
			n.log.Debug("note created", "id", id)
		}
		return ok
	}
	return n.notes.Update(n.Cursor.ID, title, content)
}

// Delete removes the open note after confirmation. Unsaved notes cannot be
// deleted; close them instead.
func (n *Notes) Delete() {
	if !n.Cursor.IsOpen() || n.Cursor.IsNew() {
		return
	}
	note, ok := n.notes.Get(n.Cursor.ID)
	if !ok {
		return
	}
	id := note.ID
	ask(n.p, confirmRequest("Delete note?", `"`+note.Title+`" will be removed.`), func(Answer) {
		if n.notes.Delete(id) && n.Cursor.ID == id {
			n.Cursor.Close()
		}
	})
}
