// Package cli wires the cobra command tree: the TUI as the root command and
// headless subcommands over the same store.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/config"
	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/store"
)

// Build metadata, set with -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootOptions struct {
	configPath string
}

func New() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "aura",
		Short: "Flashcards, notes, todos and a focus timer in your terminal.",
		Example: `
aura
aura todo add buy milk
aura focus --mode shortBreak
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, ro)
		},
	}
	cmd.PersistentFlags().StringVar(&ro.configPath, "config", "", "Path to the config file (default $AURA_CONFIG or ~/.config/aura/config.yaml).")

	AddCommands(cmd, ro)
	return cmd
}

func AddCommands(topLevel *cobra.Command, ro *rootOptions) {
	addStats(topLevel, ro)
	addTodo(topLevel, ro)
	addFocus(topLevel, ro)
	addExport(topLevel, ro)
	addVersion(topLevel)
}

// session is everything a headless subcommand needs.
type session struct {
	cfg   *config.Config
	store *store.Store
	log   *slog.Logger
}

func (s *session) Close() error { return s.store.Close() }

// open loads config and opens the store, logging to logOut.
func (ro *rootOptions) open(logOut io.Writer) (*session, error) {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return nil, err
	}
	return openSession(cfg, logOut)
}

func openSession(cfg *config.Config, logOut io.Writer) (*session, error) {
	logger := logging.New(cfg.Log, logOut)

	s, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path, store.Options{
		Logger:        logger,
		TimerDefaults: cfg.Timer.Defaults(),
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("storage opened", "backend", cfg.Storage.Backend)
	return &session{cfg: cfg, store: s, log: logger}, nil
}
