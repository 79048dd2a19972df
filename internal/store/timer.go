package store

const TimerSettingsKey = "aura_timer_settings"

// DefaultTimerSettings is the classic 25/5/15 split with no custom duration.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15}
}

// Timer owns the persisted countdown durations. Runtime countdown state is
// never stored.
type Timer struct {
	v *Value[TimerSettings]
}

func newTimer(kv *KV, defaults TimerSettings) *Timer {
	if defaults.FocusMinutes < 1 || defaults.ShortBreakMinutes < 1 || defaults.LongBreakMinutes < 1 {
		defaults = DefaultTimerSettings()
	}
	def := func() TimerSettings { return defaults }
	return &Timer{v: newValue(kv, TimerSettingsKey, def, func(s *TimerSettings) bool {
		changed := false
		fix := func(m *int, fallback int) {
			if *m < 1 {
				*m = fallback
				changed = true
			}
		}
		fix(&s.FocusMinutes, defaults.FocusMinutes)
		fix(&s.ShortBreakMinutes, defaults.ShortBreakMinutes)
		fix(&s.LongBreakMinutes, defaults.LongBreakMinutes)
		if s.CustomMinutes != nil && *s.CustomMinutes < 1 {
			s.CustomMinutes = nil
			changed = true
		}
		return changed
	})}
}

func (t *Timer) Load() { t.v.Load() }

func (t *Timer) Settings() TimerSettings {
	s := t.v.Get()
	if s.CustomMinutes != nil {
		m := *s.CustomMinutes
		s.CustomMinutes = &m
	}
	return s
}

// SetDurations replaces the three preset durations. Every value must be at
// least one minute.
func (t *Timer) SetDurations(focus, shortBreak, longBreak int) bool {
	if focus < 1 || shortBreak < 1 || longBreak < 1 {
		return false
	}
	t.v.Update(func(s *TimerSettings) {
		s.FocusMinutes = focus
		s.ShortBreakMinutes = shortBreak
		s.LongBreakMinutes = longBreak
	})
	return true
}

func (t *Timer) SetCustom(minutes int) bool {
	if minutes < 1 {
		return false
	}
	t.v.Update(func(s *TimerSettings) { s.CustomMinutes = &minutes })
	return true
}
