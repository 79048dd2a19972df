package export

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/sadopc/aura/internal/store"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Formats lists every export format in picker order.
var Formats = []Format{FormatJSON, FormatYAML, FormatCSV, FormatMarkdown}

var formatExt = map[Format]string{
	FormatJSON:     "json",
	FormatYAML:     "yaml",
	FormatCSV:      "csv",
	FormatMarkdown: "md",
}

var formatLabels = map[Format]string{
	FormatJSON:     "JSON backup",
	FormatYAML:     "YAML backup",
	FormatCSV:      "CSV focus log",
	FormatMarkdown: "Markdown notes",
}

func (f Format) Label() string { return formatLabels[f] }

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Snapshot is a point-in-time copy of every document. Building it reads the
// store; writing it does not, so a snapshot may be written off the UI loop.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at" yaml:"exported_at"`
	Name       string              `json:"name,omitempty" yaml:"name,omitempty"`
	Decks      []store.Deck        `json:"decks" yaml:"decks"`
	Notes      []store.Note        `json:"notes" yaml:"notes"`
	Todos      []store.Todo        `json:"todos" yaml:"todos"`
	Timer      store.TimerSettings `json:"timer" yaml:"timer"`
	Focus      []store.DayTotal    `json:"-" yaml:"-"`
	FocusLog   map[string]int      `json:"focus_minutes" yaml:"focus_minutes"`
}

func NewSnapshot(s *store.Store, now time.Time) Snapshot {
	focus := s.Focus.All()
	days := make([]store.DayTotal, 0, len(focus))
	for key, minutes := range focus {
		day, err := store.ParseDayKey(key)
		if err != nil {
			continue
		}
		days = append(days, store.DayTotal{Day: day, Key: key, Minutes: minutes})
	}
	slices.SortFunc(days, func(a, b store.DayTotal) int { return a.Day.Compare(b.Day) })

	return Snapshot{
		ExportedAt: now.UTC(),
		Name:       s.Profile.Name(),
		Decks:      s.Decks.List(),
		Notes:      s.Notes.List(""),
		Todos:      s.Todos.List(),
		Timer:      s.Timer.Settings(),
		Focus:      days,
		FocusLog:   focus,
	}
}

// DefaultPath names an export file in dir, e.g. aura-export-2026-03-07.json.
func DefaultPath(dir string, f Format, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("aura-export-%s.%s", now.Format("2006-01-02"), formatExt[f]))
}

// Write exports snap to path in format f.
func Write(snap Snapshot, f Format, path string) error {
	switch f {
	case FormatJSON:
		return ToJSON(snap, path)
	case FormatYAML:
		return ToYAML(snap, path)
	case FormatCSV:
		return ToCSV(snap.Focus, path)
	case FormatMarkdown:
		return ToMarkdown(snap.Notes, path)
	}
	return fmt.Errorf("unknown export format %q", f)
}

func writeFile(path string, data []byte, what string) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s file: %w", what, err)
	}
	return nil
}
