package timings

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/display"
	"github.com/julianstephens/adhan/internal/models"
)

// Model lists the day's prayer times and highlights the current period.
type Model struct {
	table table.Model
}

func New() Model {
	columns := []table.Column{
		{Title: "Prayer", Width: 10},
		{Title: "Time", Width: 18},
		{Title: "Starts", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(models.Periods)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	return Model{table: t}
}

// Rows builds one row per period: raw backend value and parsed 24h start.
func Rows(s display.State) []table.Row {
	rows := make([]table.Row, 0, len(models.Periods))
	for _, p := range models.Periods {
		starts := "--:--"
		if s.HasSchedule {
			starts = s.Schedule.Start(p).Format(constants.TimeFormat)
		}
		rows = append(rows, table.Row{string(p), s.Timings.Value.Get(p), starts})
	}
	return rows
}

func (m *Model) SetState(s display.State) {
	m.table.SetRows(Rows(s))
	if i := s.Period.Index(); i >= 0 {
		m.table.SetCursor(i)
	}
}

func (m Model) View() string {
	return m.table.View()
}
