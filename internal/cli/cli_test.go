package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/aura/internal/app"
	"github.com/sadopc/aura/internal/pomodoro"
	"github.com/sadopc/aura/internal/store"
)

// testConfig writes a config that keeps storage inside a temp dir and
// returns its path.
func testConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	data := "storage:\n  backend: " + backend + "\n  path: " + filepath.Join(dir, "data") + "\nlog:\n  level: error\n"
	if backend == store.BackendSQLite {
		data = "storage:\n  backend: sqlite\n  path: " + filepath.Join(dir, "aura.db") + "\nlog:\n  level: error\n"
	}
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTodoCommands(t *testing.T) {
	cfg := testConfig(t, store.BackendSQLite)

	out, err := run(t, cfg, "todo", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, app.NoTodos)

	_, err = run(t, cfg, "todo", "add", "buy", "milk")
	require.NoError(t, err)
	_, err = run(t, cfg, "todo", "add", "walk dog")
	require.NoError(t, err)

	out, err = run(t, cfg, "todo", "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. [x] buy milk")
	assert.Contains(t, out, " 2. [ ] walk dog")
	assert.Contains(t, out, "1 open")

	out, err = run(t, cfg, "todo", "rm", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "buy milk")

	_, err = run(t, cfg, "todo", "done", "9")
	assert.Error(t, err)
	_, err = run(t, cfg, "todo", "rm", "zero")
	assert.Error(t, err)
	_, err = run(t, cfg, "todo", "add", "  ")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	cfg := testConfig(t, store.BackendDiskv)

	_, err := run(t, cfg, "todo", "add", "x")
	require.NoError(t, err)

	out, err := run(t, cfg, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "Today: 0 min focused")
	assert.Contains(t, out, "Open todos: 1")
	assert.Contains(t, out, "Last 7 days:")
	assert.Equal(t, 7, strings.Count(out, " min \n")+strings.Count(out, " min █"))
}

func TestExportCommand(t *testing.T) {
	cfg := testConfig(t, store.BackendSQLite)
	target := filepath.Join(t.TempDir(), "backup.yaml")

	out, err := run(t, cfg, "export", "--format", "yaml", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "decks: []")

	_, err = run(t, cfg, "export", "--format", "pdf")
	assert.Error(t, err)
}

func TestFocusBadMode(t *testing.T) {
	cfg := testConfig(t, store.BackendSQLite)
	_, err := run(t, cfg, "focus", "--mode", "nap")
	assert.Error(t, err)
}

func TestRunCountdown(t *testing.T) {
	s, err := store.NewMemory()
	require.NoError(t, err)
	defer s.Close()
	require.True(t, s.Timer.SetDurations(1, 1, 1))

	f := app.NewFocus(s.Timer, s.Focus, nil)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, runCountdown(context.Background(), cmd, f, time.Millisecond))
	assert.Contains(t, out.String(), "FOCUS complete. Focused today: 1 min")
	assert.Equal(t, 1, s.Focus.Today())
}

func TestRunCountdownInterrupted(t *testing.T) {
	s, err := store.NewMemory()
	require.NoError(t, err)
	defer s.Close()

	f := app.NewFocus(s.Timer, s.Focus, nil)
	f.SwitchMode(pomodoro.Focus)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, runCountdown(ctx, cmd, f, time.Hour))
	assert.Contains(t, out.String(), "Stopped")
	assert.Zero(t, s.Focus.Today())
}

func TestVersion(t *testing.T) {
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, Version+"\n", out.String())
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing.yaml"), "stats")
	assert.Error(t, err)
}
