package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/app"
	"github.com/sadopc/aura/internal/pomodoro"
)

type focusModel struct {
	focus  *app.Focus
	width  int
	height int
}

func newFocusModel(f *app.Focus) focusModel {
	return focusModel{focus: f}
}

func (f *focusModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

// focusTick schedules the next tick of the countdown chain gen.
func focusTick(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return focusTickMsg{gen: gen}
	})
}

func (f focusModel) update(msg tea.Msg) (focusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case focusTickMsg:
		switch f.focus.Tick(msg.gen) {
		case pomodoro.Counting:
			return f, focusTick(msg.gen)
		case pomodoro.Completed:
			v := f.focus.View()
			text := "Break over \a"
			if v.Mode == string(pomodoro.Focus) {
				text = fmt.Sprintf("Focus session complete! %s today \a", formatMinutes(v.TodayMinutes))
			}
			return f, status(text)
		}
		return f, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if gen, started := f.focus.Toggle(); started {
				return f, focusTick(gen)
			}
		case key.Matches(msg, keys.Reset):
			f.focus.Reset()
		case key.Matches(msg, keys.Focus):
			f.focus.SwitchMode(pomodoro.Focus)
		case key.Matches(msg, keys.Short):
			f.focus.SwitchMode(pomodoro.ShortBreak)
		case key.Matches(msg, keys.Long):
			f.focus.SwitchMode(pomodoro.LongBreak)
		case key.Matches(msg, keys.Custom):
			f.focus.AskCustom()
		case key.Matches(msg, keys.Edit):
			f.focus.AskDurations()
		}
	}
	return f, nil
}

// running reports whether the countdown is ticking, for the footer.
func (f focusModel) running() bool {
	return f.focus.Engine.State() == pomodoro.Running
}

func (f focusModel) view() string {
	w := f.width - 4
	v := f.focus.View()

	var clock, indicator string
	switch f.focus.Engine.State() {
	case pomodoro.Running:
		clock = timerRunningStyle.Width(w - 6).Render(v.Clock)
		indicator = successStyle.Render("●  RUNNING")
	case pomodoro.Paused:
		clock = timerPausedStyle.Width(w - 6).Render(v.Clock)
		indicator = warningStyle.Render("⏸  PAUSED")
	default:
		clock = timerStyle.Width(w - 6).Render(v.Clock)
		indicator = mutedStyle.Render("■  READY")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Focus Timer"),
		"",
		f.renderModes(v.Mode),
		"",
		clock,
		indicator,
		"",
		progressBar(v.Progress, min(max(w-16, 10), 50)),
		"",
		mutedStyle.Render(fmt.Sprintf("Focused today: %s", formatMinutes(v.TodayMinutes))),
	)
	controls := mutedStyle.Render("space: start/pause  r: reset  f/b/l: focus/short/long  c: custom  e: durations")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}

func (f focusModel) renderModes(active string) string {
	tabs := make([]string, 0, len(pomodoro.Modes))
	for _, m := range pomodoro.Modes {
		label := fmt.Sprintf("%s %dm", m.Label(), f.focus.Engine.Minutes(m))
		if string(m) == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	filled = min(max(filled, 0), width)
	return accentStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled)) +
		mutedStyle.Render(fmt.Sprintf(" %3.0f%%", p*100))
}
