package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/aura/internal/richtext"
	"github.com/sadopc/aura/internal/store"
)

// ToMarkdown writes every note as a second-level section, bodies converted
// from their stored HTML.
func ToMarkdown(notes []store.Note, path string) error {
	var b strings.Builder
	b.WriteString("# Notes\n")
	for _, n := range notes {
		body, err := richtext.ToMarkdown(n.Content)
		if err != nil {
			return fmt.Errorf("convert note %s: %w", n.ID, err)
		}
		fmt.Fprintf(&b, "\n## %s\n\n", n.Title)
		fmt.Fprintf(&b, "_Updated %s_\n", n.Updated().Local().Format(time.DateTime))
		if body != "" {
			b.WriteString("\n" + body + "\n")
		}
	}
	return writeFile(path, []byte(b.String()), "markdown")
}
