package config

import (
	"fmt"
	"strings"

	"github.com/sadopc/aura/internal/store"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case store.BackendSQLite, store.BackendDiskv:
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)", store.BackendSQLite, store.BackendDiskv, c.Storage.Backend)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if err := c.Timer.validate(); err != nil {
		return fmt.Errorf("timer: %w", err)
	}
	return nil
}

func (t *TimerConfig) validate() error {
	if t.FocusMinutes < 1 {
		return fmt.Errorf("focus_minutes must be >= 1 (got %d)", t.FocusMinutes)
	}
	if t.ShortBreakMinutes < 1 {
		return fmt.Errorf("short_break_minutes must be >= 1 (got %d)", t.ShortBreakMinutes)
	}
	if t.LongBreakMinutes < 1 {
		return fmt.Errorf("long_break_minutes must be >= 1 (got %d)", t.LongBreakMinutes)
	}
	return nil
}
