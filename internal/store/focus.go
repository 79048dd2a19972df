package store

import (
	"fmt"
	"maps"
	"time"
)

const FocusLogKey = "aura_focus_minutes_today"

// DayKey formats t as the local calendar day key, e.g. "2026-3-7".
func DayKey(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// ParseDayKey is the inverse of DayKey.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation("2006-1-2", key, time.Local)
}

// FocusLog is the daily focus aggregate: completed focus minutes per day.
// Totals only grow; nothing prunes old days.
type FocusLog struct {
	v   *Value[map[string]int]
	now func() time.Time
}

func newFocusLog(kv *KV, now func() time.Time) *FocusLog {
	def := func() map[string]int { return map[string]int{} }
	return &FocusLog{v: newValue(kv, FocusLogKey, def, func(m *map[string]int) bool {
		changed := false
		for k, v := range *m {
			if v < 0 {
				delete(*m, k)
				changed = true
			}
		}
		return changed
	}), now: now}
}

func (f *FocusLog) Load() { f.v.Load() }

// Record adds minutes to the day containing at.
func (f *FocusLog) Record(at time.Time, minutes int) {
	f.Add(DayKey(at), minutes)
}

func (f *FocusLog) Add(day string, minutes int) bool {
	if minutes <= 0 || day == "" {
		return false
	}
	f.v.Update(func(m *map[string]int) {
		if *m == nil {
			*m = map[string]int{}
		}
		(*m)[day] += minutes
	})
	return true
}

func (f *FocusLog) Minutes(day string) int { return f.v.Get()[day] }

func (f *FocusLog) Today() int { return f.Minutes(DayKey(f.now())) }

// All returns a copy of the whole aggregate.
func (f *FocusLog) All() map[string]int { return maps.Clone(f.v.Get()) }

// Days returns the n days ending with the day containing end, oldest first.
// Days without focus report zero.
func (f *FocusLog) Days(end time.Time, n int) []DayTotal {
	end = end.Local()
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.Local)
	out := make([]DayTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := last.AddDate(0, 0, -i)
		key := DayKey(day)
		out = append(out, DayTotal{Day: day, Key: key, Minutes: f.Minutes(key)})
	}
	return out
}
