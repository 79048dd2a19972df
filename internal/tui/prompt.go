package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/app"
)

// formPrompter answers app requests with huh forms rendered inside the
// program. At most one request is pending; a second Ask while one is open is
// answered as cancelled.
type formPrompter struct {
	req     app.Request
	answer  func(app.Answer)
	form    *huh.Form
	started bool

	// Form field pointers (survive value copies)
	values    map[string]*string
	confirmed *bool
}

func newFormPrompter() *formPrompter {
	return &formPrompter{}
}

func (p *formPrompter) Ask(req app.Request, answer func(app.Answer)) {
	if p.form != nil {
		answer(app.Answer{})
		return
	}
	p.req = req
	p.answer = answer
	p.values = make(map[string]*string, len(req.Fields))

	var group *huh.Group
	switch req.Kind {
	case app.AskConfirm:
		ok := false
		p.confirmed = &ok
		group = huh.NewGroup(
			huh.NewConfirm().
				Title(req.Title).
				Description(req.Description).
				Affirmative("Yes").
				Negative("No").
				Value(p.confirmed),
		)
	default:
		fields := make([]huh.Field, 0, len(req.Fields))
		for _, f := range req.Fields {
			v := f.Value
			p.values[f.Key] = &v
			fields = append(fields, huh.NewInput().
				Key(f.Key).
				Title(f.Label).
				Placeholder(f.Placeholder).
				Value(&v))
		}
		group = huh.NewGroup(fields...)
	}

	p.form = huh.NewForm(group).WithShowHelp(true).WithShowErrors(true)
	p.started = false
}

func (p *formPrompter) active() bool { return p.form != nil }

// start returns the Init command of a form opened since the last call.
func (p *formPrompter) start() tea.Cmd {
	if p.form == nil || p.started {
		return nil
	}
	p.started = true
	return p.form.Init()
}

func (p *formPrompter) update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.resolve(false)
			return nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	switch p.form.State {
	case huh.StateCompleted:
		p.resolve(true)
		return nil
	case huh.StateAborted:
		p.resolve(false)
		return nil
	}
	return cmd
}

// resolve closes the form and delivers the answer. The prompter is cleared
// first so the handler may ask again.
func (p *formPrompter) resolve(ok bool) {
	if p.form == nil {
		return
	}
	req, answer, values, confirmed := p.req, p.answer, p.values, p.confirmed
	*p = formPrompter{}

	if req.Kind == app.AskConfirm {
		ok = ok && confirmed != nil && *confirmed
	}
	a := app.Answer{OK: ok}
	if ok {
		a.Values = make(map[string]string, len(values))
		for k, v := range values {
			a.Values[k] = *v
		}
	}
	answer(a)
}

func (p *formPrompter) view(width int) string {
	if p.form == nil {
		return ""
	}
	title := titleStyle.Render(p.req.Title)
	if p.req.Kind == app.AskConfirm {
		title = accentStyle.Bold(true).Render(p.req.Title)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
	return activePanelStyle.Width(width).Render(content)
}
