package store

import (
	"slices"
	"time"
)

type Card struct {
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back" yaml:"back"`
}

type Deck struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Cards []Card `json:"cards" yaml:"cards"`
}

func (d Deck) clone() Deck {
	d.Cards = slices.Clone(d.Cards)
	if d.Cards == nil {
		d.Cards = []Card{}
	}
	return d
}

// Note content is an HTML fragment. Timestamps are Unix milliseconds.
type Note struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt int64  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt int64  `json:"updatedAt" yaml:"updatedAt"`
}

func (n Note) Created() time.Time { return time.UnixMilli(n.CreatedAt) }
func (n Note) Updated() time.Time { return time.UnixMilli(n.UpdatedAt) }

type Todo struct {
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// TimerSettings holds countdown durations in minutes. CustomMinutes is nil
// until the user sets a custom duration.
type TimerSettings struct {
	FocusMinutes      int  `json:"focusMinutes" yaml:"focusMinutes"`
	ShortBreakMinutes int  `json:"shortBreakMinutes" yaml:"shortBreakMinutes"`
	LongBreakMinutes  int  `json:"longBreakMinutes" yaml:"longBreakMinutes"`
	CustomMinutes     *int `json:"customMinutes" yaml:"customMinutes"`
}

// DayTotal is one entry of the daily focus aggregate.
type DayTotal struct {
	Day     time.Time
	Key     string
	Minutes int
}
