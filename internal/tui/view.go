package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.state
	bg := lipgloss.Color(s.BackgroundColor())
	fg := foregroundFor(s.BackgroundColor())

	status := s.Status()
	if s.Loading() {
		status = m.spinner.View() + " " + status
	}

	sections := []string{
		m.nowModel.View(),
		statusStyle.Foreground(fg).Render(status),
	}
	if label := strings.TrimSpace(s.DayLabel.Value); label != "" {
		sections = append(sections, dayLabelStyle.Foreground(fg).Render(label))
	}
	if s.HasSchedule {
		sections = append(sections, m.timingsModel.View())
	}
	if m.debug {
		sections = append(sections, m.viewDebug()...)
	}
	sections = append(sections, m.help.View(m))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			content,
			lipgloss.WithWhitespaceBackground(bg),
		)
	}
	return lipgloss.NewStyle().Background(bg).Render(content)
}

func (m Model) viewDebug() []string {
	var lines []string
	if err := m.state.Timings.Err; err != nil {
		lines = append(lines, debugStyle.Render("timings: "+err.Error()))
	}
	if err := m.state.DayLabel.Err; err != nil {
		lines = append(lines, debugStyle.Render("day label: "+err.Error()))
	}
	if err := m.state.ParseErr; err != nil {
		lines = append(lines, debugStyle.Render("parse: "+err.Error()))
	}
	return lines
}
