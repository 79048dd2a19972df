package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/aura/internal/app"
)

const (
	editorTitle = iota
	editorBody
)

type notesModel struct {
	notes  *app.Notes
	width  int
	height int

	cursor int
	search textinput.Model

	title      textinput.Model
	body       textarea.Model
	editorPart int
}

func newNotesModel(n *app.Notes) notesModel {
	search := textinput.New()
	search.Placeholder = "Search notes..."
	search.Prompt = "/ "

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120

	body := textarea.New()
	body.Placeholder = "Write here. Start a line with - [ ] for a checkbox."
	body.ShowLineNumbers = false
	body.CharLimit = 0

	return notesModel{notes: n, search: search, title: title, body: body}
}

func (n *notesModel) setSize(w, h int) {
	n.width = w
	n.height = h
	n.search.Width = max(w-12, 10)
	n.title.Width = max(w-12, 10)
	n.body.SetWidth(max(w-8, 10))
	n.body.SetHeight(max(h-12, 3))
}

// capturing reports whether typed keys belong to a text field.
func (n notesModel) capturing() bool {
	return n.search.Focused() || n.notes.Cursor.IsOpen()
}

func (n notesModel) update(msg tea.Msg) (notesModel, tea.Cmd) {
	switch {
	case n.notes.Cursor.IsOpen():
		return n.updateEditor(msg)
	case n.search.Focused():
		return n.updateSearch(msg)
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		return n.updateList(k)
	}
	return n, nil
}

func (n notesModel) updateList(msg tea.KeyMsg) (notesModel, tea.Cmd) {
	rows := n.notes.NoteList().Rows
	n.cursor = clampIndex(n.cursor, len(rows))

	switch {
	case key.Matches(msg, keys.Up):
		if n.cursor > 0 {
			n.cursor--
		}
	case key.Matches(msg, keys.Down):
		if n.cursor < len(rows)-1 {
			n.cursor++
		}
	case key.Matches(msg, keys.Search):
		cmd := n.search.Focus()
		return n, cmd
	case key.Matches(msg, keys.Back):
		n.search.SetValue("")
		n.notes.SetFilter("")
	case key.Matches(msg, keys.New):
		n.notes.New()
		return n.openEditor()
	case key.Matches(msg, keys.Enter):
		if len(rows) > 0 && n.notes.Open(rows[n.cursor].ID) {
			return n.openEditor()
		}
	}
	return n, nil
}

func (n notesModel) updateSearch(msg tea.Msg) (notesModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Enter):
			n.search.Blur()
			return n, nil
		case key.Matches(k, keys.Back):
			n.search.Blur()
			n.search.SetValue("")
			n.notes.SetFilter("")
			return n, nil
		}
	}
	var cmd tea.Cmd
	n.search, cmd = n.search.Update(msg)
	if q := n.search.Value(); q != n.notes.Filter() {
		n.notes.SetFilter(q)
		n.cursor = 0
	}
	return n, cmd
}

// openEditor loads the open note into the editor fields.
func (n notesModel) openEditor() (notesModel, tea.Cmd) {
	e := n.notes.Editor()
	n.title.SetValue(e.Title)
	n.body.SetValue(e.Text)
	n.editorPart = editorBody
	if e.IsNew {
		n.editorPart = editorTitle
	}
	cmd := n.focusEditor()
	return n, cmd
}

func (n *notesModel) focusEditor() tea.Cmd {
	if n.editorPart == editorTitle {
		n.body.Blur()
		return n.title.Focus()
	}
	n.title.Blur()
	return n.body.Focus()
}

func (n notesModel) updateEditor(msg tea.Msg) (notesModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Back):
			n.notes.Close()
			n.title.Blur()
			n.body.Blur()
			return n, nil
		case key.Matches(k, keys.Save):
			if n.notes.Save(n.title.Value(), n.body.Value()) {
				n.title.SetValue(n.notes.Editor().Title)
				return n, status("Note saved")
			}
			return n, errorStatus("Nothing to save: the note is empty")
		case k.String() == "ctrl+d":
			n.notes.Delete()
			return n, nil
		case key.Matches(k, keys.Tab), key.Matches(k, keys.ShiftTab):
			n.editorPart = 1 - n.editorPart
			cmd := n.focusEditor()
			return n, cmd
		}
	}

	var cmd tea.Cmd
	if n.editorPart == editorTitle {
		n.title, cmd = n.title.Update(msg)
	} else {
		n.body, cmd = n.body.Update(msg)
	}
	return n, cmd
}

func (n notesModel) view() string {
	if e := n.notes.Editor(); e.Open {
		return n.renderEditor(e)
	}
	return n.renderList()
}

func (n notesModel) renderList() string {
	w := n.width - 4
	v := n.notes.NoteList()

	var rows []string
	rows = append(rows, titleStyle.Render("Notes"))
	if n.search.Focused() || v.Filter != "" {
		rows = append(rows, n.search.View())
	}
	rows = append(rows, "")

	if v.Placeholder != "" {
		rows = append(rows, mutedStyle.Render(v.Placeholder))
	} else {
		sel := clampIndex(n.cursor, len(v.Rows))
		for i, note := range v.Rows {
			cursor := "  "
			style := normalItemStyle
			if i == sel {
				cursor = "> "
				style = selectedItemStyle
			}
			rows = append(rows, style.Render(cursor+note.Title)+mutedStyle.Render("  "+humanize.Time(note.Updated)))
			if note.Preview != "" {
				rows = append(rows, subtitleStyle.Render("    "+note.Preview))
			}
		}
		if md := n.notes.Markdown(v.Rows[sel].ID); md != "" {
			rows = append(rows, "", mutedStyle.Render(strings.Repeat("─", max(min(w-6, 60), 1))))
			rows = append(rows, md)
		}
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: open  /: search  esc: clear search"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (n notesModel) renderEditor(e app.EditorView) string {
	w := n.width - 4
	heading := "Edit note"
	if e.IsNew {
		heading = "New note"
	}

	hints := []string{"ctrl+s: save", "tab: switch field", "esc: close"}
	if e.CanDelete {
		hints = append(hints, "ctrl+d: delete")
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(heading),
		"",
		n.title.View(),
		"",
		n.body.View(),
		"",
		mutedStyle.Render(fmt.Sprintf("  %s", strings.Join(hints, "  "))),
	))
}
