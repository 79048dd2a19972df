package app

import (
	"time"

	"github.com/sadopc/aura/internal/store"
)

// WeekDays is how many days of focus history the home tab charts.
const WeekDays = 7

// Home summarises every tool and owns the display name.
type Home struct {
	s   *store.Store
	p   Prompter
	now func() time.Time
}

func NewHome(s *store.Store, p Prompter, now func() time.Time) *Home {
	return &Home{s: s, p: p, now: now}
}

func (h *Home) Greeting() string {
	if name := h.s.Profile.Name(); name != "" {
		return "hello, " + name
	}
	return "hello"
}

func (h *Home) View() HomeView {
	return HomeView{
		Greeting:     h.Greeting(),
		TodayMinutes: h.s.Focus.Today(),
		Decks:        h.s.Decks.Len(),
		Notes:        h.s.Notes.Len(),
		OpenTodos:    h.s.Todos.Open(),
		Week:         h.s.Focus.Days(h.now(), WeekDays),
	}
}

// ChangeName asks for a new display name. Blank input keeps the old one.
func (h *Home) ChangeName() {
	ask(h.p, inputRequest("Change name",
		Field{Key: "name", Label: "Your name", Value: h.s.Profile.Name()},
	), func(a Answer) {
		h.s.Profile.SetName(a.Text("name"))
	})
}
