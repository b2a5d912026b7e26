package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/storage"
)

// Run table layout constants
const (
	maxRuns        = 8 // Runs shown in the table
	runTableHeight = maxRuns + 1
)

// RunHistory is the read side of the run store shown next to the game.
type RunHistory interface {
	RecentRuns(session string, limit int) ([]storage.RunEntry, error)
	BestRun() (storage.RunEntry, bool, error)
}

// newRunTable creates the run history table.
func newRunTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Pieces", Width: 7},
		{Title: "Lines", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Ended", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(runTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// runRows converts run entries to table rows, newest first.
func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		ended := ""
		if !r.CreatedAt.IsZero() {
			ended = r.CreatedAt.Format("15:04:05")
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Fallen),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Tick),
			ended,
		}
	}
	return rows
}
