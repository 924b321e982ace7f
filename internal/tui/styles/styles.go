// Package styles centralizes the lipgloss styles and status glyphs used
// by the dashboard.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/comux/internal/supervisor"
)

var (
	// Colors
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple
	GreenColor   = lipgloss.Color("#10B981") // Green
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	ErrorColor   = lipgloss.Color("#F87171") // Red
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray
	TextColor    = lipgloss.Color("#F9FAFB") // Light text
	BorderColor  = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Label = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)

	Elapsed = lipgloss.NewStyle().
		Foreground(MutedColor)

	OutputLine = lipgloss.NewStyle().
			Foreground(MutedColor)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	// Status styles
	StatusPending  = lipgloss.NewStyle().Foreground(MutedColor)
	StatusRunning  = lipgloss.NewStyle().Foreground(WarningColor)
	StatusSuccess  = lipgloss.NewStyle().Foreground(GreenColor)
	StatusFailed   = lipgloss.NewStyle().Foreground(ErrorColor)
	StatusKilled   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	StatusSignaled = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
)

// Status glyphs
const (
	GlyphPending  = "◌"
	GlyphRunning  = "●"
	GlyphSuccess  = "✓"
	GlyphFailed   = "✗"
	GlyphSignaled = "⚡"
	GlyphKilled   = "☠"
)

// StatusGlyph returns the rendered glyph for a process snapshot.
func StatusGlyph(p supervisor.Process) string {
	switch p.Status {
	case supervisor.StatusPending:
		return StatusPending.Render(GlyphPending)
	case supervisor.StatusRunning:
		return StatusRunning.Render(GlyphRunning)
	case supervisor.StatusExited:
		if p.ExitCode == 0 {
			return StatusSuccess.Render(GlyphSuccess)
		}
		return StatusFailed.Render(GlyphFailed)
	case supervisor.StatusSignaled:
		return StatusSignaled.Render(GlyphSignaled)
	case supervisor.StatusKilled:
		return StatusKilled.Render(GlyphKilled)
	default:
		return " "
	}
}
