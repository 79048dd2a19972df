package config

import (
	"github.com/sadopc/aura/internal/store"
)

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Timer   TimerConfig   `yaml:"timer"`
}

// StorageConfig selects the key/value backend. An empty path uses the
// backend's default location.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"AURA_STORAGE_BACKEND" env-default:"sqlite"`
	Path    string `yaml:"path"    env:"AURA_STORAGE_PATH"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so its logs
// go to File; an empty File means <data dir>/aura.log.
type LogConfig struct {
	Level  string `yaml:"level"  env:"AURA_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"AURA_LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"AURA_LOG_FILE"`
}

// TimerConfig holds the durations written on first run, in minutes. Once
// timer settings are stored, the stored values win.
type TimerConfig struct {
	FocusMinutes      int `yaml:"focus_minutes"       env:"AURA_TIMER_FOCUS_MINUTES"       env-default:"25"`
	ShortBreakMinutes int `yaml:"short_break_minutes" env:"AURA_TIMER_SHORT_BREAK_MINUTES" env-default:"5"`
	LongBreakMinutes  int `yaml:"long_break_minutes"  env:"AURA_TIMER_LONG_BREAK_MINUTES"  env-default:"15"`
}

// Defaults converts the timer section into first-run timer settings.
func (t TimerConfig) Defaults() store.TimerSettings {
	return store.TimerSettings{
		FocusMinutes:      t.FocusMinutes,
		ShortBreakMinutes: t.ShortBreakMinutes,
		LongBreakMinutes:  t.LongBreakMinutes,
	}
}
