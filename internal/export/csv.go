package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/aura/internal/store"
)

// ToCSV writes one row per day of the focus log, oldest first.
func ToCSV(days []store.DayTotal, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Day", "Date", "Minutes", "Duration"}); err != nil {
		return err
	}

	for _, d := range days {
		row := []string{
			d.Key,
			d.Day.Format("2006-01-02"),
			fmt.Sprintf("%d", d.Minutes),
			formatDuration(int64(d.Minutes) * 60),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
