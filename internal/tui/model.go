package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/adhan/internal/display"
	"github.com/julianstephens/adhan/internal/tui/components/now"
	"github.com/julianstephens/adhan/internal/tui/components/timings"
)

// StateMsg carries a controller snapshot into the program.
type StateMsg display.State

type Model struct {
	state        display.State
	keys         KeyMap
	help         help.Model
	spinner      spinner.Model
	nowModel     now.Model
	timingsModel timings.Model
	onQuit       func()
	debug        bool
	quitting     bool
	width        int
	height       int
}

type Option func(*Model)

// WithOnQuit runs fn once when the user quits.
func WithOnQuit(fn func()) Option {
	return func(m *Model) {
		m.onQuit = fn
	}
}

// WithDebug shows fetch and parse failures in a footer.
func WithDebug(debug bool) Option {
	return func(m *Model) {
		m.debug = debug
	}
}

func NewModel(initial display.State, opts ...Option) Model {
	m := Model{
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		nowModel:     now.New(),
		timingsModel: timings.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.setState(initial)
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// State returns the snapshot currently on screen.
func (m Model) State() display.State {
	return m.state
}

func (m *Model) setState(s display.State) {
	m.state = s
	m.nowModel.SetState(s, foregroundFor(s.BackgroundColor()))
	m.timingsModel.SetState(s)
}
