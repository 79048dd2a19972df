package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/aura/internal/app"
)

type homeModel struct {
	home   *app.Home
	width  int
	height int
}

func newHomeModel(h *app.Home) homeModel {
	return homeModel{home: h}
}

func (h *homeModel) setSize(w, height int) {
	h.width = w
	h.height = height
}

func (h homeModel) view() string {
	w := h.width - 4
	v := h.home.View()

	greeting := titleStyle.Render(v.Greeting)
	today := fmt.Sprintf("%s %s",
		mutedStyle.Render("Focused today"),
		highlightStyle.Render(formatMinutes(v.TodayMinutes)))
	counts := mutedStyle.Render(fmt.Sprintf("%s  ·  %s  ·  %s open",
		plural(v.Decks, "deck"),
		plural(v.Notes, "note"),
		plural(v.OpenTodos, "todo")))

	total := 0
	for _, d := range v.Week {
		total += d.Minutes
	}
	weekTitle := fmt.Sprintf("%s  %s",
		titleStyle.Render("Last 7 days"),
		mutedStyle.Render(humanize.Comma(int64(total))+" min"))

	chart := mutedStyle.Render("No focus sessions this week. Press 5 to start one.")
	if total > 0 {
		chart = h.chart(v)
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		greeting, "", today, counts, "", weekTitle, "", chart,
	))
}

func (h homeModel) chart(v app.HomeView) string {
	chartWidth := max(h.width-12, 28)
	chartHeight := 10
	if h.height > 30 {
		chartHeight = 14
	}

	chart := barchart.New(chartWidth, chartHeight)
	bars := make([]barchart.BarData, 0, len(v.Week))
	for _, d := range v.Week {
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if d.Minutes == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: d.Day.Format("Mon"),
			Values: []barchart.BarValue{{
				Name:  d.Key,
				Value: float64(d.Minutes),
				Style: style,
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}
