// Package tui renders the live dashboard for a run: one row per process
// with status glyph, elapsed time, and the latest captured output, all
// read from supervisor snapshots on a bounded redraw tick.
//
// When stderr is not an interactive terminal the dashboard degrades to
// a line-oriented status log instead of failing the run.
package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/Iron-Ham/comux/internal/supervisor"
)

// App wraps the Bubbletea program for one run.
type App struct {
	program *tea.Program
	model   Model
}

// New creates a dashboard application over the given supervisor and
// signal coordinator.
func New(sup *supervisor.Supervisor, coord *supervisor.SignalCoordinator, redrawInterval time.Duration, maxLabelWidth int) *App {
	return &App{
		model: NewModel(sup, coord, redrawInterval, maxLabelWidth),
	}
}

// Interactive reports whether f is attached to a terminal capable of
// hosting the dashboard.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run displays the dashboard until the run completes or shutdown
// finishes. The dashboard is drawn on stderr so propagation output and
// shell pipelines on stdout are never disturbed.
//
// If stderr is not an interactive terminal, Run falls back to the
// line-oriented status log.
func (a *App) Run() error {
	if !Interactive(os.Stderr) {
		return RunPlain(a.model.sup, os.Stderr)
	}

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	_, err := a.program.Run()
	return err
}
