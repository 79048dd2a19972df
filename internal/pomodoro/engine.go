// Package pomodoro implements the focus countdown: a single one-second tick
// chain per session, with completed focus runs committed to the daily focus
// log.
package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/aura/internal/store"
)

type Mode string

const (
	Focus      Mode = "focus"
	ShortBreak Mode = "shortBreak"
	LongBreak  Mode = "longBreak"
	Custom     Mode = "custom"
)

// Modes lists every mode in display order.
var Modes = []Mode{Focus, ShortBreak, LongBreak, Custom}

var modeLabels = map[Mode]string{
	Focus:      "FOCUS",
	ShortBreak: "SHORT BREAK",
	LongBreak:  "LONG BREAK",
	Custom:     "CUSTOM",
}

func (m Mode) Label() string { return modeLabels[m] }

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown timer mode %q", s)
}

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Outcome is the result of delivering one tick to the engine.
type Outcome int

const (
	// Stale means the tick belonged to a chain that has since been
	// cancelled; the caller must not schedule another one.
	Stale Outcome = iota
	// Counting means one second was consumed and the next tick is due.
	Counting
	// Completed means the countdown reached zero and the engine is idle again.
	Completed
)

// Recorder receives completed focus minutes. *store.FocusLog implements it.
type Recorder interface {
	Record(at time.Time, minutes int)
}

// Engine is the countdown state machine. Every Start issues a new
// generation; ticks carrying any other generation are ignored, so at most
// one tick chain can ever decrement the countdown.
type Engine struct {
	settings  store.TimerSettings
	mode      Mode
	state     State
	remaining int // seconds
	gen       uint64

	rec Recorder
	now func() time.Time
}

func New(settings store.TimerSettings, rec Recorder) *Engine {
	e := &Engine{settings: settings, mode: Focus, rec: rec, now: time.Now}
	e.remaining = e.durationSeconds()
	return e
}

// SetClock replaces the clock used to date completed sessions.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

func (e *Engine) Mode() Mode         { return e.mode }
func (e *Engine) State() State       { return e.state }
func (e *Engine) Generation() uint64 { return e.gen }

func (e *Engine) Settings() store.TimerSettings { return e.settings }

// Minutes returns the configured length of mode. Custom falls back to the
// focus length until a custom value has been set.
func (e *Engine) Minutes(mode Mode) int {
	switch mode {
	case ShortBreak:
		return e.settings.ShortBreakMinutes
	case LongBreak:
		return e.settings.LongBreakMinutes
	case Custom:
		if e.settings.CustomMinutes != nil {
			return *e.settings.CustomMinutes
		}
	}
	return e.settings.FocusMinutes
}

func (e *Engine) durationSeconds() int {
	return max(e.Minutes(e.mode), 1) * 60
}

func (e *Engine) Duration() time.Duration {
	return time.Duration(e.durationSeconds()) * time.Second
}

func (e *Engine) Remaining() time.Duration {
	return time.Duration(e.remaining) * time.Second
}

// Progress is the consumed fraction of the current countdown, 0 to 1.
func (e *Engine) Progress() float64 {
	total := e.durationSeconds()
	return float64(total-e.remaining) / float64(total)
}

// Start begins (or resumes) the countdown and returns the generation the
// caller must attach to its ticks. Starting while running is a no-op and
// reports false.
func (e *Engine) Start() (uint64, bool) {
	if e.state == Running {
		return e.gen, false
	}
	e.gen++
	e.state = Running
	return e.gen, true
}

// Pause stops the tick chain and keeps the remaining time.
func (e *Engine) Pause() bool {
	if e.state != Running {
		return false
	}
	e.gen++
	e.state = Paused
	return true
}

// Toggle pauses a running countdown or starts a stopped one. It returns the
// generation to tick with when it started one.
func (e *Engine) Toggle() (uint64, bool) {
	if e.state == Running {
		e.Pause()
		return 0, false
	}
	return e.Start()
}

// Reset stops the countdown and restores the full duration of the current mode.
func (e *Engine) Reset() {
	e.gen++
	e.state = Idle
	e.remaining = e.durationSeconds()
}

// SwitchMode discards any progress and resets to the new mode's duration.
func (e *Engine) SwitchMode(m Mode) {
	e.mode = m
	e.Reset()
}

// Configure applies new durations. Like a mode switch it stops the
// countdown and resets it.
func (e *Engine) Configure(settings store.TimerSettings) {
	e.settings = settings
	e.Reset()
}

// Tick consumes one second of the chain identified by gen.
func (e *Engine) Tick(gen uint64) Outcome {
	if e.state != Running || gen != e.gen {
		return Stale
	}
	e.remaining--
	if e.remaining > 0 {
		return Counting
	}
	if e.mode == Focus && e.rec != nil {
		e.rec.Record(e.now(), e.Minutes(Focus))
	}
	e.Reset()
	return Completed
}

// ErrTicksClosed is returned by Run when the tick source closes before the
// countdown completes.
var ErrTicksClosed = errors.New("pomodoro: tick source closed")

// Run starts the countdown and feeds it from ticks until it completes, ctx
// is cancelled, or ticks is closed. observe, if set, is called after every
// tick that was applied. A countdown interrupted by ctx is left paused.
func (e *Engine) Run(ctx context.Context, ticks <-chan time.Time, observe func(Outcome)) error {
	gen, started := e.Start()
	if !started {
		return errors.New("pomodoro: countdown already running")
	}
	for {
		select {
		case <-ctx.Done():
			e.Pause()
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				e.Pause()
				return ErrTicksClosed
			}
			out := e.Tick(gen)
			if out == Stale {
				return nil
			}
			if observe != nil {
				observe(out)
			}
			if out == Completed {
				return nil
			}
		}
	}
}

// FormatClock renders d as MM:SS.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
