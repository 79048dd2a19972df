package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/app"
	"github.com/sadopc/aura/internal/store"
)

type settingsModel struct {
	home   *app.Home
	focus  *app.Focus
	store  *store.Store
	width  int
	height int
}

func newSettingsModel(c *app.Core) settingsModel {
	return settingsModel{home: c.Home, focus: c.Focus, store: c.Store}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Name):
			s.home.ChangeName()
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			s.focus.AskDurations()
		case key.Matches(msg, keys.Custom):
			s.focus.AskCustom()
		}
	}
	return s, nil
}

func (s settingsModel) view() string {
	w := s.width - 4
	t := s.focus.Settings()

	name := s.store.Profile.Name()
	if name == "" {
		name = mutedStyle.Render("(not set)")
	}
	custom := mutedStyle.Render("(not set)")
	if t.CustomMinutes != nil {
		custom = fmt.Sprintf("%d min", *t.CustomMinutes)
	}

	settings := [][2]string{
		{"Name", name},
		{"Focus", fmt.Sprintf("%d min", t.FocusMinutes)},
		{"Short break", fmt.Sprintf("%d min", t.ShortBreakMinutes)},
		{"Long break", fmt.Sprintf("%d min", t.LongBreakMinutes)},
		{"Custom", custom},
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	for _, kv := range settings {
		label := lipgloss.NewStyle().Width(16).Render(kv[0])
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(kv[1])))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: change name  enter: timer durations  c: custom duration  E: export"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
