package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/aura/internal/store"
)

func sampleStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	id, _ := s.Decks.Create("Spanish")
	s.Decks.AddCard(id, "hola", "hello")
	s.Notes.Create("Groceries", `<p>milk<br><input type="checkbox" checked> eggs</p>`)
	s.Todos.Add("call mom")
	s.Profile.SetName("Ada")

	day := time.Date(2026, 3, 7, 10, 0, 0, 0, time.Local)
	s.Focus.Record(day, 25)
	s.Focus.Record(day.AddDate(0, 0, -1), 50)
	return s
}

func sampleSnapshot(t *testing.T) Snapshot {
	t.Helper()
	return NewSnapshot(sampleStore(t), time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
}

// ============================================================
// Snapshot
// ============================================================

func TestNewSnapshot(t *testing.T) {
	snap := sampleSnapshot(t)
	if snap.Name != "Ada" {
		t.Fatalf("Name = %q", snap.Name)
	}
	if len(snap.Decks) != 1 || len(snap.Decks[0].Cards) != 1 {
		t.Fatalf("Decks = %+v", snap.Decks)
	}
	if len(snap.Focus) != 2 {
		t.Fatalf("expected 2 focus days, got %d", len(snap.Focus))
	}
	if snap.Focus[0].Key != "2026-3-6" || snap.Focus[1].Key != "2026-3-7" {
		t.Fatalf("focus days not sorted oldest first: %+v", snap.Focus)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Fatalf("ParseFormat(%q) = %q, %v", f, got, err)
		}
		if f.Label() == "" {
			t.Fatalf("format %q has no label", f)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local)
	got := DefaultPath("/tmp", FormatMarkdown, now)
	if got != filepath.Join("/tmp", "aura-export-2026-03-07.md") {
		t.Fatalf("DefaultPath = %q", got)
	}
}

// ============================================================
// JSON / YAML
// ============================================================

func TestToJSON(t *testing.T) {
	snap := sampleSnapshot(t)
	path := filepath.Join(t.TempDir(), "test.json")

	if err := Write(snap, FormatJSON, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"exported_at", "decks", "notes", "todos", "timer", "focus_minutes"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("missing key %q", key)
		}
	}
	focus := got["focus_minutes"].(map[string]any)
	if focus["2026-3-7"] != float64(25) {
		t.Fatalf("focus_minutes = %v", focus)
	}
}

func TestToJSONEmptyStore(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(NewSnapshot(s, time.Now()), path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	for _, want := range []string{`"decks": []`, `"notes": []`, `"todos": []`, `"focus_minutes": {}`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %s in %s", want, data)
		}
	}
}

func TestToYAML(t *testing.T) {
	snap := sampleSnapshot(t)
	path := filepath.Join(t.TempDir(), "test.yaml")

	if err := ToYAML(snap, path); err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Name  string       `yaml:"name"`
		Decks []store.Deck `yaml:"decks"`
		Timer struct {
			FocusMinutes int `yaml:"focusMinutes"`
		} `yaml:"timer"`
	}
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if got.Name != "Ada" || len(got.Decks) != 1 || got.Decks[0].Cards[0].Back != "hello" {
		t.Fatalf("unexpected YAML content: %+v", got)
	}
	if got.Timer.FocusMinutes != 25 {
		t.Fatalf("timer.focusMinutes = %d", got.Timer.FocusMinutes)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(Snapshot{}, "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	snap := sampleSnapshot(t)
	path := filepath.Join(t.TempDir(), "test.csv")

	if err := Write(snap, FormatCSV, path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows (1 header + 2 data), got %d", len(records))
	}

	expectedHeader := []string{"Day", "Date", "Minutes", "Duration"}
	for i, h := range expectedHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	row := records[1]
	if row[0] != "2026-3-6" || row[1] != "2026-03-06" {
		t.Fatalf("first row day = %v", row)
	}
	if row[2] != "50" || row[3] != "00:50:00" {
		t.Fatalf("first row duration = %v", row)
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	records, _ := csv.NewReader(f).ReadAll()
	if len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(nil, "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{1500, "00:25:00"},
		{3661, "01:01:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

// ============================================================
// Markdown
// ============================================================

func TestToMarkdown(t *testing.T) {
	snap := sampleSnapshot(t)
	path := filepath.Join(t.TempDir(), "notes.md")

	if err := Write(snap, FormatMarkdown, path); err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "# Notes\n") {
		t.Fatalf("missing heading: %q", out)
	}
	if !strings.Contains(out, "## Groceries") {
		t.Fatalf("missing note section: %q", out)
	}
	if !strings.Contains(out, "[x] eggs") {
		t.Fatalf("checkbox not converted: %q", out)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(Snapshot{}, Format("pdf"), filepath.Join(t.TempDir(), "x")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
