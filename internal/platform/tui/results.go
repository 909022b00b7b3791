package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-beats/internal/game"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("178")).
	Padding(0, 1)

// resultRows lists the per-tier breakdown of a run.
func resultRows(sum game.Summary) []table.Row {
	rows := make([]table.Row, 0, len(rhythm.Tiers)+2)
	for i, t := range rhythm.Tiers {
		n := sum.Counts[i]
		rows = append(rows, table.Row{
			strings.TrimSuffix(t.String(), "!"),
			strconv.Itoa(n),
			strconv.Itoa(n * t.Points()),
		})
	}
	rows = append(rows,
		table.Row{"Expired", strconv.Itoa(sum.Expired), "0"},
		table.Row{"Total", strconv.Itoa(sum.Total), strconv.Itoa(sum.Score)},
	)
	return rows
}

// newResultsTable creates the end-of-run table.
func newResultsTable(sum game.Summary, width int) table.Model {
	columns := []table.Column{
		{Title: "Judgement", Width: 12},
		{Title: "Count", Width: 8},
		{Title: "Points", Width: 10},
	}
	if width > 60 {
		columns[0].Width = 16
	}

	rows := resultRows(sum)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// resultsView renders the results screen.
func resultsView(t table.Model, sum game.Summary, h help.Model, keys GameKeyMap) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(sum.Chart + " results"))
	b.WriteString("\n\n")
	b.WriteString(t.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(" Accuracy: %.1f%%\n\n", sum.Accuracy()*100))
	b.WriteString(h.View(keys))
	b.WriteString("\n")

	return b.String()
}
