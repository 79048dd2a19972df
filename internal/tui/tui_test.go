package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/aura/internal/app"
	"github.com/sadopc/aura/internal/export"
	"github.com/sadopc/aura/internal/pomodoro"
	"github.com/sadopc/aura/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestApp returns a sized app over an empty in-memory store.
func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	m, _ := NewApp(s, nil).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to the app in order and returns the command produced by
// the last one.
func press(a App, ks ...string) (App, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range ks {
		var m tea.Model
		m, cmd = a.Update(keyMsg(k))
		a = m.(App)
	}
	return a, cmd
}

// answer fills the open form and submits it.
func answer(t *testing.T, a App, values ...string) {
	t.Helper()
	if !a.prompt.active() {
		t.Fatal("expected an open prompt")
	}
	for i := 0; i+1 < len(values); i += 2 {
		v, ok := a.prompt.values[values[i]]
		if !ok {
			t.Fatalf("prompt has no field %q", values[i])
		}
		*v = values[i+1]
	}
	a.prompt.resolve(true)
}

func confirm(t *testing.T, a App, yes bool) {
	t.Helper()
	if !a.prompt.active() || a.prompt.req.Kind != app.AskConfirm {
		t.Fatal("expected an open confirmation")
	}
	*a.prompt.confirmed = yes
	a.prompt.resolve(true)
}

// ============================================================
// App shell
// ============================================================

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	a := NewApp(s, nil)
	// Width 0 means not yet sized
	if got := a.View(); got != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", got)
	}
	if a.activeView != viewHome {
		t.Fatalf("activeView = %d, want home", a.activeView)
	}
	if a.Init() != nil {
		t.Fatal("Init should not schedule anything")
	}
}

func TestAppTabNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		key  string
		want viewState
	}{
		{"2", viewDecks},
		{"3", viewNotes},
		{"4", viewTodos},
		{"5", viewFocus},
		{"6", viewSettings},
		{"tab", viewHome},
		{"shift+tab", viewSettings},
		{"1", viewHome},
	}
	for _, tt := range tests {
		a, _ = press(a, tt.key)
		if a.activeView != tt.want {
			t.Fatalf("after %q activeView = %d, want %d", tt.key, a.activeView, tt.want)
		}
	}
}

func TestAppViewsRender(t *testing.T) {
	a, _ := newTestApp(t)

	for i, name := range viewNames {
		a.activeView = viewState(i)
		out := a.View()
		if out == "" {
			t.Fatalf("view %s rendered empty", name)
		}
		if out != a.View() {
			t.Fatalf("view %s is not a pure function of state", name)
		}
		if !strings.Contains(a.renderHeader(), name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppEmptyPlaceholders(t *testing.T) {
	a, _ := newTestApp(t)

	tests := map[viewState]string{
		viewDecks: app.NoDecks,
		viewNotes: app.NoNotes,
		viewTodos: app.NoTodos,
	}
	for v, want := range tests {
		a.activeView = v
		if !strings.Contains(a.View(), want) {
			t.Fatalf("view %s missing placeholder %q", viewNames[v], want)
		}
	}
}

func TestAppQuit(t *testing.T) {
	a, _ := newTestApp(t)
	_, cmd := press(a, "q")
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should produce tea.QuitMsg")
	}
}

func TestAppStatusMessage(t *testing.T) {
	a, _ := newTestApp(t)
	m, _ := a.Update(statusMsg{text: "test status"})
	a = m.(App)

	if !strings.Contains(a.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestHomeSummary(t *testing.T) {
	a, s := newTestApp(t)
	if !strings.Contains(a.View(), "No focus sessions this week") {
		t.Fatal("empty week should show a hint instead of a chart")
	}

	s.Focus.Record(time.Now(), 25)
	s.Todos.Add("call mom")
	id, _ := s.Decks.Create("Spanish")
	s.Decks.AddCard(id, "hola", "hello")

	view := a.View()
	for _, want := range []string{"hello", "25 min", "1 deck", "0 notes", "1 todo open"} {
		if !strings.Contains(view, want) {
			t.Fatalf("home view missing %q", want)
		}
	}
	if strings.Contains(view, "No focus sessions this week") {
		t.Fatal("a week with focus time should be charted")
	}
}

// ============================================================
// Prompter
// ============================================================

func TestPromptEscCancels(t *testing.T) {
	a, s := newTestApp(t)
	a, _ = press(a, "2", "n")
	if !a.prompt.active() {
		t.Fatal("n should open the new deck form")
	}
	if !strings.Contains(a.View(), "New deck") {
		t.Fatal("form title should replace the tab content")
	}

	a, _ = press(a, "esc")
	if a.prompt.active() {
		t.Fatal("esc should close the form")
	}
	if s.Decks.Len() != 0 {
		t.Fatal("cancelled form must not create a deck")
	}
}

func TestPromptSecondAskIsCancelled(t *testing.T) {
	p := newFormPrompter()
	var first, second *app.Answer
	p.Ask(app.Request{Kind: app.AskInput, Title: "one"}, func(a app.Answer) { first = &a })
	p.Ask(app.Request{Kind: app.AskInput, Title: "two"}, func(a app.Answer) { second = &a })

	if second == nil || second.OK {
		t.Fatal("second request should be answered as cancelled")
	}
	if first != nil {
		t.Fatal("first request should still be pending")
	}
	if p.start() == nil {
		t.Fatal("start should return the form init command once")
	}
	if p.start() != nil {
		t.Fatal("start should not init the same form twice")
	}

	p.resolve(false)
	if first == nil || first.OK {
		t.Fatal("resolve(false) should cancel the first request")
	}
	if p.active() {
		t.Fatal("prompter should be idle after resolve")
	}
}

func TestPromptConfirmDefaultsToNo(t *testing.T) {
	p := newFormPrompter()
	var got app.Answer
	p.Ask(app.Request{Kind: app.AskConfirm, Title: "Delete?"}, func(a app.Answer) { got = a })
	p.resolve(true)
	if got.OK {
		t.Fatal("a confirm submitted without choosing yes is a decline")
	}
}

// ============================================================
// Decks
// ============================================================

func TestDeckFlow(t *testing.T) {
	a, s := newTestApp(t)

	a, _ = press(a, "2", "n")
	answer(t, a, "name", "Spanish")
	if !strings.Contains(a.View(), "Spanish") {
		t.Fatal("new deck should be listed")
	}

	a, _ = press(a, "enter")
	if !a.core.Flashcards.Cursor.IsOpen() {
		t.Fatal("enter should open the deck")
	}
	if !strings.Contains(a.View(), app.NoCards) {
		t.Fatal("empty deck should show the no-cards placeholder")
	}

	a, _ = press(a, "a")
	answer(t, a, "front", "hola", "back", "hello")
	a, _ = press(a, "a")
	answer(t, a, "front", "adios", "back", "bye")
	if !strings.Contains(a.View(), "adios") || !strings.Contains(a.View(), "2 / 2") {
		t.Fatal("adding a card should show it")
	}

	a, _ = press(a, "right")
	if !strings.Contains(a.View(), "1 / 2") {
		t.Fatal("next should wrap to the first card")
	}
	a, _ = press(a, " ")
	if !strings.Contains(a.View(), "hello") {
		t.Fatal("space should flip to the back")
	}

	a, _ = press(a, "d")
	confirm(t, a, false)
	deck, _ := s.Decks.Get(a.core.Flashcards.Cursor.ID)
	if len(deck.Cards) != 2 {
		t.Fatal("declined delete must keep the card")
	}

	a, _ = press(a, "d")
	confirm(t, a, true)
	deck, _ = s.Decks.Get(a.core.Flashcards.Cursor.ID)
	if len(deck.Cards) != 1 || deck.Cards[0].Front != "adios" {
		t.Fatalf("cards after delete = %+v", deck.Cards)
	}

	a, _ = press(a, "r")
	answer(t, a, "name", "Español")
	if !strings.Contains(a.View(), "Español") {
		t.Fatal("rename should show in the open viewer")
	}

	a, _ = press(a, "D")
	confirm(t, a, true)
	if a.core.Flashcards.Cursor.IsOpen() || s.Decks.Len() != 0 {
		t.Fatal("deleting the open deck should close the viewer")
	}
	if !strings.Contains(a.View(), app.NoDecks) {
		t.Fatal("deck list should be empty again")
	}
}

func TestDeckListIgnoresKeysWhenEmpty(t *testing.T) {
	a, _ := newTestApp(t)
	a, _ = press(a, "2", "enter", "r", "d", "down", "up")
	if a.prompt.active() || a.core.Flashcards.Cursor.IsOpen() {
		t.Fatal("empty deck list should ignore item keys")
	}
}

// ============================================================
// Notes
// ============================================================

func TestNotesEditorFlow(t *testing.T) {
	a, s := newTestApp(t)

	a, _ = press(a, "3", "n")
	if !a.isCapturing() {
		t.Fatal("editor should capture typed keys")
	}
	a, _ = press(a, "Groceries", "tab", "milk")

	a, cmd := press(a, "ctrl+s")
	if s.Notes.Len() != 1 {
		t.Fatalf("expected 1 note, got %d", s.Notes.Len())
	}
	if msg, ok := cmd().(statusMsg); !ok || msg.isError {
		t.Fatalf("save status = %+v", msg)
	}
	note := s.Notes.List("")[0]
	if note.Title != "Groceries" || note.Content != "<p>milk</p>" {
		t.Fatalf("saved note = %+v", note)
	}

	a, _ = press(a, "esc")
	if a.core.Notes.Cursor.IsOpen() {
		t.Fatal("esc should close the editor")
	}
	view := a.View()
	if !strings.Contains(view, "Groceries") || !strings.Contains(view, "milk") {
		t.Fatal("list should show the title and preview")
	}
}

func TestNotesEmptySaveRejected(t *testing.T) {
	a, s := newTestApp(t)
	a, _ = press(a, "3", "n")
	_, cmd := press(a, "ctrl+s")
	if msg, ok := cmd().(statusMsg); !ok || !msg.isError {
		t.Fatal("saving an empty note should report an error status")
	}
	if s.Notes.Len() != 0 {
		t.Fatal("empty note must not be stored")
	}
}

func TestNotesSearch(t *testing.T) {
	a, s := newTestApp(t)
	s.Notes.Create("Groceries", "<p>milk</p>")
	s.Notes.Create("Ideas", "<p>rocket</p>")

	a, _ = press(a, "3", "/", "rock")
	if a.core.Notes.Filter() != "rock" {
		t.Fatalf("filter = %q", a.core.Notes.Filter())
	}
	view := a.View()
	if !strings.Contains(view, "Ideas") || strings.Contains(view, "Groceries") {
		t.Fatal("list should only show matching notes")
	}

	a, _ = press(a, "enter")
	if a.isCapturing() {
		t.Fatal("enter should leave the search field")
	}
	a, _ = press(a, "/", "zzz")
	if !strings.Contains(a.View(), app.NoNoteMatches) {
		t.Fatal("no matches should show its placeholder")
	}
	a, _ = press(a, "esc")
	if a.core.Notes.Filter() != "" {
		t.Fatal("esc should clear the search")
	}
}

func TestNotesDeleteFromEditor(t *testing.T) {
	a, s := newTestApp(t)
	s.Notes.Create("Doomed", "<p>x</p>")

	a, _ = press(a, "3", "enter", "ctrl+d")
	confirm(t, a, true)
	if s.Notes.Len() != 0 {
		t.Fatal("confirmed delete should remove the note")
	}
	if a.core.Notes.Cursor.IsOpen() {
		t.Fatal("editor should close after delete")
	}
}

// ============================================================
// Todos
// ============================================================

func TestTodosFlow(t *testing.T) {
	a, s := newTestApp(t)

	a, _ = press(a, "4", "n", "buy milk")
	if !a.isCapturing() {
		t.Fatal("new todo input should capture keys")
	}
	a, _ = press(a, "q")
	if a.todos.input.Value() != "buy milkq" {
		t.Fatalf("input = %q", a.todos.input.Value())
	}
	a, _ = press(a, "esc", "n", "buy milk", "enter")
	if s.Todos.Len() != 1 {
		t.Fatalf("expected 1 todo, got %d", s.Todos.Len())
	}

	a, _ = press(a, " ")
	if s.Todos.List()[0].Done != true {
		t.Fatal("space should toggle the todo")
	}
	if !strings.Contains(a.View(), "[x] buy milk") {
		t.Fatal("done todo should render checked")
	}

	a, _ = press(a, "d")
	if s.Todos.Len() != 0 {
		t.Fatal("d should delete without confirmation")
	}
}

// ============================================================
// Focus timer
// ============================================================

func TestFocusTicks(t *testing.T) {
	a, s := newTestApp(t)
	a.core.Focus.SetDurations(1, 1, 1)

	a, cmd := press(a, "5", " ")
	if cmd == nil {
		t.Fatal("starting should schedule a tick")
	}
	gen := a.core.Focus.Engine.Generation()

	for i := 0; i < 59; i++ {
		m, cmd := a.Update(focusTickMsg{gen: gen})
		a = m.(App)
		if cmd == nil {
			t.Fatalf("tick %d should schedule the next one", i)
		}
	}
	if !strings.Contains(a.renderFooter(), "00:01") {
		t.Fatal("footer should show the running countdown")
	}

	// Ticks keep counting on another tab.
	a, _ = press(a, "1")
	m, cmd := a.Update(focusTickMsg{gen: gen})
	a = m.(App)
	msg, ok := cmd().(statusMsg)
	if !ok || !strings.Contains(msg.text, "complete") {
		t.Fatalf("completion status = %+v", msg)
	}
	if s.Focus.Today() != 1 {
		t.Fatalf("focus minutes = %d, want 1", s.Focus.Today())
	}
	if a.core.Focus.Engine.State() != pomodoro.Idle {
		t.Fatal("timer should be idle after completion")
	}
}

func TestFocusStaleTickIgnored(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(a, "5", " ")
	gen := a.core.Focus.Engine.Generation()
	a, _ = press(a, " ")
	if a.core.Focus.Engine.State() != pomodoro.Paused {
		t.Fatal("second space should pause")
	}

	before := a.core.Focus.Engine.Remaining()
	m, cmd := a.Update(focusTickMsg{gen: gen})
	a = m.(App)
	if cmd != nil || a.core.Focus.Engine.Remaining() != before {
		t.Fatal("tick from a paused chain must be ignored")
	}
}

func TestFocusModeKeys(t *testing.T) {
	a, _ := newTestApp(t)
	a, _ = press(a, "5")

	tests := map[string]pomodoro.Mode{
		"b": pomodoro.ShortBreak,
		"l": pomodoro.LongBreak,
		"f": pomodoro.Focus,
	}
	for k, want := range tests {
		a, _ = press(a, k)
		if got := a.core.Focus.Engine.Mode(); got != want {
			t.Fatalf("%q: mode = %s, want %s", k, got, want)
		}
	}

	a, _ = press(a, "c")
	answer(t, a, "minutes", "45")
	if a.core.Focus.Engine.Mode() != pomodoro.Custom || a.core.Focus.Engine.Duration() != 45*time.Minute {
		t.Fatal("custom prompt should switch to a 45 minute custom timer")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsPrompts(t *testing.T) {
	a, s := newTestApp(t)

	a, _ = press(a, "6", "n")
	answer(t, a, "name", "Ada")
	if s.Profile.Name() != "Ada" {
		t.Fatalf("name = %q", s.Profile.Name())
	}

	a, _ = press(a, "enter")
	answer(t, a, "focus", "50", "short", "10", "long", "20")
	got := s.Timer.Settings()
	if got.FocusMinutes != 50 || got.ShortBreakMinutes != 10 || got.LongBreakMinutes != 20 {
		t.Fatalf("timer settings = %+v", got)
	}
	if !strings.Contains(a.View(), "50 min") {
		t.Fatal("settings view should show the new focus length")
	}

	a, _ = press(a, "1")
	if !strings.Contains(a.View(), "hello, Ada") {
		t.Fatal("home should greet by name")
	}
}

// ============================================================
// Export
// ============================================================

func TestExportPicker(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	a, s := newTestApp(t)
	s.Todos.Add("call mom")
	a.now = func() time.Time { return time.Date(2026, 3, 7, 9, 0, 0, 0, time.Local) }

	a, _ = press(a, "E")
	if !a.exportPicking {
		t.Fatal("E should open the export picker")
	}
	a, _ = press(a, "esc")
	if a.exportPicking {
		t.Fatal("esc should close the picker")
	}

	a, cmd := press(a, "E", "down", "enter")
	if a.exportPicking || cmd == nil {
		t.Fatal("enter should start the export")
	}
	msg, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %T", msg)
	}
	if msg.format != export.FormatYAML {
		t.Fatalf("format = %s, want yaml", msg.format)
	}
	want := filepath.Join(home, "aura-export-2026-03-07.yaml")
	if msg.path != want {
		t.Fatalf("path = %q, want %q", msg.path, want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "call mom") {
		t.Fatal("export should contain the todo")
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{0: "0 min", 25: "25 min", 60: "1h 00m", 135: "2h 15m"}
	for in, want := range tests {
		if got := formatMinutes(in); got != want {
			t.Errorf("formatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 0, 0},
		{-1, 3, 0},
		{5, 3, 2},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := clampIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0.5, 10); !strings.Contains(got, "█████░░░░░") || !strings.Contains(got, "50%") {
		t.Fatalf("progressBar(0.5) = %q", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, group := range keys.FullHelp() {
		if len(group) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}
