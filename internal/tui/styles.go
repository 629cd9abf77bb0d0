package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	dayLabelStyle = lipgloss.NewStyle().
			Italic(true).
			Padding(0, 1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

// lightBackgrounds need dark text to stay readable.
var lightBackgrounds = map[string]bool{
	"#ffbb00": true,
	"#6bff4d": true,
}

func foregroundFor(background string) lipgloss.Color {
	if lightBackgrounds[background] {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
