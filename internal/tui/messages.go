package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is sent periodically to redraw the dashboard. Updates arriving
// between ticks are coalesced into the next frame rather than redrawn
// individually.
type tickMsg time.Time

// runDoneMsg signals that every process reached a terminal status.
type runDoneMsg struct{}

// tick returns a command that sends a tickMsg after the redraw interval.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
