package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/comux/internal/supervisor"
)

// Model holds the dashboard state. It never mutates process state
// directly: it reads supervisor snapshots and forwards interrupt
// keypresses to the signal coordinator.
type Model struct {
	sup   *supervisor.Supervisor
	coord *supervisor.SignalCoordinator

	redrawInterval time.Duration
	maxLabelWidth  int

	// UI state
	width      int
	height     int
	ready      bool
	done       bool
	interrupts int
}

// NewModel creates a dashboard model for the given run.
func NewModel(sup *supervisor.Supervisor, coord *supervisor.SignalCoordinator, redrawInterval time.Duration, maxLabelWidth int) Model {
	return Model{
		sup:            sup,
		coord:          coord,
		redrawInterval: redrawInterval,
		maxLabelWidth:  maxLabelWidth,
	}
}

// waitDone blocks until the run completes, then wakes the program.
func (m Model) waitDone() tea.Cmd {
	return func() tea.Msg {
		<-m.sup.Done()
		return runDoneMsg{}
	}
}

// Init starts the redraw tick and the run-completion watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.redrawInterval), m.waitDone())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// While the TUI owns the terminal, ctrl+c arrives as a key,
			// not a SIGINT. Feed it into the same escalation path as an
			// operator signal: first press graceful, second press kill.
			m.interrupts++
			m.coord.Trigger()
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Relayout immediately; bubbletea redraws on every message.
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tick(m.redrawInterval)

	case runDoneMsg:
		// The final frame rendered on quit reflects every terminal state.
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}
