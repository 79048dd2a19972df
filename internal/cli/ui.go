package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/config"
	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/tui"
)

// runUI starts the full-screen app. The terminal belongs to the UI, so logs
// go to the configured log file.
func runUI(cmd *cobra.Command, ro *rootOptions) error {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return err
	}
	f, err := logging.OpenFile(cfg.Log)
	if err != nil {
		return err
	}
	defer f.Close()

	sess, err := openSession(cfg, f)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.log.Info("starting ui", "version", Version)
	p := tea.NewProgram(tui.NewApp(sess.store, sess.log), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}
