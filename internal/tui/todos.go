package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/aura/internal/app"
)

type todosModel struct {
	todos  *app.Todos
	width  int
	height int

	cursor int
	input  textinput.Model
}

func newTodosModel(t *app.Todos) todosModel {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = "+ "
	return todosModel{todos: t, input: input}
}

func (t *todosModel) setSize(w, h int) {
	t.width = w
	t.height = h
	t.input.Width = max(w-12, 10)
}

func (t todosModel) capturing() bool { return t.input.Focused() }

func (t todosModel) update(msg tea.Msg) (todosModel, tea.Cmd) {
	if t.input.Focused() {
		return t.updateInput(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	n := len(t.todos.TodoList().Rows)
	t.cursor = clampIndex(t.cursor, n)

	switch {
	case key.Matches(k, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(k, keys.Down):
		if t.cursor < n-1 {
			t.cursor++
		}
	case key.Matches(k, keys.New):
		t.input.SetValue("")
		cmd := t.input.Focus()
		return t, cmd
	case key.Matches(k, keys.Enter), k.String() == " ", k.String() == "x":
		t.todos.Toggle(t.cursor)
	case key.Matches(k, keys.Delete):
		if t.todos.Delete(t.cursor) {
			t.cursor = clampIndex(t.cursor, n-1)
		}
	}
	return t, nil
}

func (t todosModel) updateInput(msg tea.Msg) (todosModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Enter):
			if t.todos.Add(t.input.Value()) {
				t.cursor = len(t.todos.TodoList().Rows) - 1
			}
			t.input.SetValue("")
			t.input.Blur()
			return t, nil
		case key.Matches(k, keys.Back):
			t.input.SetValue("")
			t.input.Blur()
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t todosModel) view() string {
	w := t.width - 4
	v := t.todos.TodoList()

	var rows []string
	title := titleStyle.Render("Todos")
	if v.Placeholder == "" {
		title += mutedStyle.Render(fmt.Sprintf("  %d open", v.Open))
	}
	rows = append(rows, title)
	rows = append(rows, "")

	if v.Placeholder != "" {
		rows = append(rows, mutedStyle.Render(v.Placeholder))
	}
	sel := clampIndex(t.cursor, len(v.Rows))
	for i, row := range v.Rows {
		cursor, mark, style := "  ", "[ ]", normalItemStyle
		if row.Done {
			mark, style = "[x]", doneItemStyle
		}
		if i == sel {
			cursor, style = "> ", style.Foreground(colorPrimary).Bold(true)
		}
		rows = append(rows, style.Render(cursor+mark+" "+row.Text))
	}

	if t.input.Focused() {
		rows = append(rows, "", t.input.View())
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  space/enter: toggle  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
