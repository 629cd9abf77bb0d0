package now

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/display"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	periodStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			Width(30).
			Align(lipgloss.Center)

	detailStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Model renders the clock, the current period, and the countdown to the
// next one.
type Model struct {
	state display.State
	fg    lipgloss.Color
}

func New() Model {
	return Model{}
}

func (m *Model) SetState(s display.State, fg lipgloss.Color) {
	m.state = s
	m.fg = fg
}

func (m Model) View() string {
	s := m.state
	title := titleStyle.Foreground(m.fg).Render(s.Now.Format(constants.ClockFormat))

	if !s.HasSchedule {
		return title
	}

	fasting := "Not fasting"
	if s.Fasting {
		fasting = "Fasting"
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		periodStyle.Foreground(m.fg).BorderForeground(m.fg).Render(s.Period.String()),
		detailStyle.Foreground(m.fg).Render(fasting),
		detailStyle.Foreground(m.fg).Render(fmt.Sprintf("%s in %s", s.NextPeriod, FormatCountdown(s.UntilNext()))),
	)
}

// FormatCountdown renders d as H:MM:SS, clamping negatives to zero.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	sec := int(d%time.Minute) / int(time.Second)
	return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
}
