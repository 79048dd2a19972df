// Package tui is the Bubble Tea front end. Every mutation goes through the
// controllers in package app, synchronously inside Update.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/app"
	"github.com/sadopc/aura/internal/export"
	"github.com/sadopc/aura/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	core   *app.Core
	prompt *formPrompter
	log    *slog.Logger
	now    func() time.Time
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	home     homeModel
	decks    decksModel
	notes    notesModel
	todos    todosModel
	focus    focusModel
	settings settingsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store, log *slog.Logger) App {
	if log == nil {
		log = slog.Default()
	}
	h := help.New()
	h.ShowAll = false

	p := newFormPrompter()
	core := app.New(s, p, log)

	return App{
		core:       core,
		prompt:     p,
		log:        log,
		now:        time.Now,
		activeView: viewHome,
		home:       newHomeModel(core.Home),
		decks:      newDecksModel(core.Flashcards),
		notes:      newNotesModel(core.Notes),
		todos:      newTodosModel(core.Todos),
		focus:      newFocusModel(core.Focus),
		settings:   newSettingsModel(core),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.decks.setSize(a.width, contentHeight)
		a.notes.setSize(a.width, contentHeight)
		a.todos.setSize(a.width, contentHeight)
		a.focus.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case focusTickMsg:
		// Ticks reach the timer whatever tab is showing.
		var cmd tea.Cmd
		a.focus, cmd = a.focus.update(msg)
		return a, cmd

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = fmt.Sprintf("Exported %s to %s", msg.format.Label(), msg.path)
		a.statusErr = false
		return a, nil
	}

	// An open prompt owns all input until it is answered.
	if a.prompt.active() {
		cmd := a.prompt.update(msg)
		return a, tea.Batch(cmd, a.prompt.start())
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// A text field of the active view takes typed keys first.
		if a.isCapturing() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewHome
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewDecks
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewNotes
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewTodos
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewFocus
			return a, nil
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, nil
		case key.Matches(msg, keys.ShiftTab):
			a.activeView = (a.activeView + viewState(len(viewNames)) - 1) % viewState(len(viewNames))
			return a, nil
		}
	}

	return a.updateActiveView(msg)
}

// updateActiveView routes msg to the current tab and opens any form the tab
// requested while handling it.
func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDecks:
		a.decks, cmd = a.decks.update(msg)
	case viewNotes:
		a.notes, cmd = a.notes.update(msg)
	case viewTodos:
		a.todos, cmd = a.todos.update(msg)
	case viewFocus:
		a.focus, cmd = a.focus.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, tea.Batch(cmd, a.prompt.start())
}

func (a App) isCapturing() bool {
	switch a.activeView {
	case viewNotes:
		return a.notes.capturing()
	case viewTodos:
		return a.todos.capturing()
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(a.height-headerHeight-footerHeight, 1)

	var content string
	switch {
	case a.prompt.active():
		content = a.prompt.view(a.width - 4)
	case a.exportPicking:
		content = a.renderExportPicker()
	default:
		content = a.renderActiveView()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderActiveView() string {
	switch a.activeView {
	case viewDecks:
		return a.decks.view()
	case viewNotes:
		return a.notes.view()
	case viewTodos:
		return a.todos.view()
	case viewFocus:
		return a.focus.view()
	case viewSettings:
		return a.settings.view()
	}
	return a.home.view()
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("aura")
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	// Timer indicator in footer
	timerInfo := ""
	if a.focus.running() {
		v := a.core.Focus.View()
		timerInfo = successStyle.Render(" ● " + v.ModeLabel + " " + v.Clock)
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Export"))
	rows = append(rows, "")
	for i, f := range export.Formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f.Label()))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport captures the snapshot now, inside Update, and writes it to the
// home directory in the background.
func (a App) doExport(f export.Format) tea.Cmd {
	now := a.now()
	snap := export.NewSnapshot(a.core.Store, now)
	log := a.log
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		path := export.DefaultPath(home, f, now)
		if err := export.Write(snap, f, path); err != nil {
			log.Error("export failed", "format", f, "err", err)
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		log.Info("exported", "format", f, "path", path)
		return exportDoneMsg{format: f, path: path}
	}
}
