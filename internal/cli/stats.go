package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/app"
)

func addStats(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's focus time, the last week and collection counts.",
		Example: `
aura stats
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := ro.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			home := app.NewHome(sess.store, nil, time.Now).View()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, home.Greeting)
			fmt.Fprintf(out, "Today: %s focused\n", formatMinutes(home.TodayMinutes))
			fmt.Fprintf(out, "Decks: %s  Notes: %s  Open todos: %s\n",
				humanize.Comma(int64(home.Decks)), humanize.Comma(int64(home.Notes)), humanize.Comma(int64(home.OpenTodos)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Last 7 days:")
			peak := 0
			for _, d := range home.Week {
				peak = max(peak, d.Minutes)
			}
			for _, d := range home.Week {
				fmt.Fprintf(out, "  %s %-10s %4d min %s\n", d.Day.Format("Mon"), d.Key, d.Minutes, bar(d.Minutes, peak, 20))
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func bar(v, peak, width int) string {
	if peak == 0 || v == 0 {
		return ""
	}
	return strings.Repeat("█", max(1, v*width/peak))
}
