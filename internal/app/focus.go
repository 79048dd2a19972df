package app

import (
	"strconv"

	"github.com/sadopc/aura/internal/pomodoro"
	"github.com/sadopc/aura/internal/store"
)

// Focus drives the countdown engine and the persisted timer settings.
type Focus struct {
	timer    *store.Timer
	focusLog *store.FocusLog
	p        Prompter
	Engine   *pomodoro.Engine
}

func NewFocus(timer *store.Timer, focusLog *store.FocusLog, p Prompter) *Focus {
	return &Focus{
		timer:    timer,
		focusLog: focusLog,
		p:        p,
		Engine:   pomodoro.New(timer.Settings(), focusLog),
	}
}

// Start, Toggle and Tick pass through to the engine; the returned
// generation must accompany every tick of the new chain.
func (f *Focus) Start() (uint64, bool)            { return f.Engine.Start() }
func (f *Focus) Toggle() (uint64, bool)           { return f.Engine.Toggle() }
func (f *Focus) Tick(gen uint64) pomodoro.Outcome { return f.Engine.Tick(gen) }
func (f *Focus) Reset()                           { f.Engine.Reset() }
func (f *Focus) SwitchMode(m pomodoro.Mode)       { f.Engine.SwitchMode(m) }
func (f *Focus) Settings() store.TimerSettings    { return f.timer.Settings() }

// SetDurations saves new preset durations and resets the countdown.
func (f *Focus) SetDurations(focus, short, long int) bool {
	if !f.timer.SetDurations(focus, short, long) {
		return false
	}
	f.Engine.Configure(f.timer.Settings())
	return true
}

// SetCustomMinutes saves the custom duration and switches to custom mode.
func (f *Focus) SetCustomMinutes(minutes int) bool {
	if !f.timer.SetCustom(minutes) {
		return false
	}
	f.Engine.Configure(f.timer.Settings())
	f.Engine.SwitchMode(pomodoro.Custom)
	return true
}

// AskCustom asks for a custom duration and switches to it. Values below one
// minute are ignored.
func (f *Focus) AskCustom() {
	cur := ""
	if s := f.timer.Settings(); s.CustomMinutes != nil {
		cur = strconv.Itoa(*s.CustomMinutes)
	}
	ask(f.p, inputRequest("Custom timer",
		Field{Key: "minutes", Label: "Minutes", Value: cur, Placeholder: "e.g. 45"},
	), func(a Answer) {
		if n, ok := a.Int("minutes"); ok {
			f.SetCustomMinutes(n)
		}
	})
}

// AskDurations edits the three preset durations at once. Any field that is
// not a whole number of at least one minute aborts the change.
func (f *Focus) AskDurations() {
	s := f.timer.Settings()
	ask(f.p, inputRequest("Timer durations",
		Field{Key: "focus", Label: "Focus (min)", Value: strconv.Itoa(s.FocusMinutes)},
		Field{Key: "short", Label: "Short break (min)", Value: strconv.Itoa(s.ShortBreakMinutes)},
		Field{Key: "long", Label: "Long break (min)", Value: strconv.Itoa(s.LongBreakMinutes)},
	), func(a Answer) {
		focus, ok1 := a.Int("focus")
		short, ok2 := a.Int("short")
		long, ok3 := a.Int("long")
		if ok1 && ok2 && ok3 {
			f.SetDurations(focus, short, long)
		}
	})
}

func (f *Focus) View() FocusView {
	e := f.Engine
	return FocusView{
		Mode:         string(e.Mode()),
		ModeLabel:    e.Mode().Label(),
		State:        e.State().String(),
		Clock:        pomodoro.FormatClock(e.Remaining()),
		Progress:     e.Progress(),
		TodayMinutes: f.focusLog.Today(),
		Settings:     e.Settings(),
	}
}
