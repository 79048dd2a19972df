package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/export"
)

func addExport(topLevel *cobra.Command, ro *rootOptions) {
	format := string(export.FormatJSON)
	out := ""
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export decks, notes, todos and the focus log.",
		Example: `
aura export
aura export --format markdown --out notes.md
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			sess, err := ro.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			now := time.Now()
			path := out
			if path == "" {
				path = export.DefaultPath(".", f, now)
			}
			if err := export.Write(export.NewSnapshot(sess.store, now), f, path); err != nil {
				return err
			}
			sess.log.Info("exported", "format", f, "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "Export format. One of json, yaml, csv or markdown.")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default aura-export-<date>.<ext> in the current directory).")

	topLevel.AddCommand(cmd)
}
