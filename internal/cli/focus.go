package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/app"
	"github.com/sadopc/aura/internal/pomodoro"
)

func addFocus(topLevel *cobra.Command, ro *rootOptions) {
	mode := string(pomodoro.Focus)
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run one countdown in the terminal. Completed focus time is logged.",
		Example: `
aura focus
aura focus --mode shortBreak
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := pomodoro.ParseMode(mode)
			if err != nil {
				return err
			}
			sess, err := ro.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			f := app.NewFocus(sess.store.Timer, sess.store.Focus, nil)
			f.SwitchMode(m)
			return runCountdown(ctx, cmd, f, time.Second)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", mode, "Timer mode. One of focus, shortBreak, longBreak or custom.")

	topLevel.AddCommand(cmd)
}

func runCountdown(ctx context.Context, cmd *cobra.Command, f *app.Focus, interval time.Duration) error {
	out := cmd.OutOrStdout()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	v := f.View()
	fmt.Fprintf(out, "%s %s", v.ModeLabel, v.Clock)
	err := f.Engine.Run(ctx, ticker.C, func(o pomodoro.Outcome) {
		if o == pomodoro.Counting {
			fmt.Fprintf(out, "\r%s %s", v.ModeLabel, pomodoro.FormatClock(f.Engine.Remaining()))
		}
	})
	fmt.Fprintln(out)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(out, "Stopped. Nothing was logged.")
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "%s complete. Focused today: %d min\n", v.ModeLabel, f.View().TodayMinutes)
	return nil
}
