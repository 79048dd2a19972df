package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/app"
)

type decksModel struct {
	cards  *app.Flashcards
	width  int
	height int

	cursor int
}

func newDecksModel(f *app.Flashcards) decksModel {
	return decksModel{cards: f}
}

func (d *decksModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d decksModel) update(msg tea.Msg) (decksModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	if d.cards.Cursor.IsOpen() {
		return d.updateViewer(k), nil
	}
	return d.updateList(k), nil
}

func (d decksModel) updateList(msg tea.KeyMsg) decksModel {
	rows := d.cards.DeckList().Rows
	d.cursor = clampIndex(d.cursor, len(rows))

	switch {
	case key.Matches(msg, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msg, keys.Down):
		if d.cursor < len(rows)-1 {
			d.cursor++
		}
	case key.Matches(msg, keys.New):
		d.cards.AddDeck()
	case len(rows) == 0:
	case key.Matches(msg, keys.Enter):
		d.cards.OpenDeck(rows[d.cursor].ID)
	case key.Matches(msg, keys.Rename):
		d.cards.RenameDeck(rows[d.cursor].ID)
	case key.Matches(msg, keys.Delete):
		d.cards.DeleteDeck(rows[d.cursor].ID)
	}
	return d
}

func (d decksModel) updateViewer(msg tea.KeyMsg) decksModel {
	switch {
	case key.Matches(msg, keys.Back):
		d.cards.CloseDeck()
	case key.Matches(msg, keys.Flip), key.Matches(msg, keys.Enter):
		d.cards.Flip()
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
		d.cards.Prev()
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
		d.cards.Next()
	case key.Matches(msg, keys.AddCard):
		d.cards.AddCard()
	case key.Matches(msg, keys.Edit):
		d.cards.EditCard()
	case key.Matches(msg, keys.Delete):
		d.cards.DeleteCard()
	case key.Matches(msg, keys.Rename):
		d.cards.RenameDeck(d.cards.Cursor.ID)
	case msg.String() == "D":
		d.cards.DeleteDeck(d.cards.Cursor.ID)
	}
	return d
}

func (d decksModel) view() string {
	if v := d.cards.Viewer(); v.Open {
		return d.renderViewer(v)
	}
	return d.renderList()
}

func (d decksModel) renderList() string {
	w := d.width - 4
	title := titleStyle.Render("Decks")
	v := d.cards.DeckList()

	if v.Placeholder != "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render(v.Placeholder),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-32s %s", "Name", "Cards")))

	sel := clampIndex(d.cursor, len(v.Rows))
	for i, deck := range v.Rows {
		cursor := "  "
		style := normalItemStyle
		if i == sel {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-32s %d", cursor, deck.Name, deck.Cards)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  r: rename  d: delete  enter: study"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d decksModel) renderViewer(v app.ViewerView) string {
	w := d.width - 4
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(v.Title), "  ", mutedStyle.Render(v.Position()))

	var body string
	if v.Placeholder != "" {
		body = mutedStyle.Render(v.Placeholder)
	} else {
		side, style := "FRONT", cardStyle
		if v.Flipped {
			side, style = "BACK", cardBackStyle
		}
		face := style.Width(max(w-10, 20)).Render(v.Face)
		body = lipgloss.JoinVertical(lipgloss.Center, subtitleStyle.Render(side), face)
	}

	help := mutedStyle.Render("  space: flip  ←/→: prev/next  a: add  e: edit  d: delete card  r: rename  D: delete deck  esc: back")
	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help),
	)
}
