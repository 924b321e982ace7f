package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/comux/internal/output"
	"github.com/Iron-Ham/comux/internal/supervisor"
	"github.com/Iron-Ham/comux/internal/tui/styles"
	"github.com/Iron-Ham/comux/internal/util"
)

// View renders one frame: a header, one block per process, and a help
// bar. Each block shows the status glyph, the truncated command label,
// elapsed time, the latest output line, and the retained scrollback.
func (m Model) View() string {
	procs := m.sup.Snapshot()
	now := time.Now()

	var b strings.Builder

	running := 0
	for _, p := range procs {
		if p.Status == supervisor.StatusRunning {
			running++
		}
	}
	b.WriteString(styles.Title.Render(fmt.Sprintf("comux · %d processes · %d running", len(procs), running)))
	b.WriteString("\n\n")

	for _, p := range procs {
		b.WriteString(m.renderProcess(p, now))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(styles.HelpBar.Render("done"))
	} else if m.interrupts > 0 {
		b.WriteString(styles.HelpBar.Render("stopping… press ctrl+c again to force kill"))
	} else {
		b.WriteString(styles.HelpBar.Render("ctrl+c stop all"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderProcess renders one process block.
func (m Model) renderProcess(p supervisor.Process, now time.Time) string {
	var b strings.Builder

	labelWidth := m.maxLabelWidth
	if m.ready && m.width > 0 && m.width-20 < labelWidth {
		// Leave room for the glyph, status word, and elapsed column.
		labelWidth = m.width - 20
	}

	b.WriteString(fmt.Sprintf("%s (%d) %s %s %s\n",
		styles.StatusGlyph(p),
		p.ID,
		styles.Label.Render(util.TruncateANSI(p.Command.Label, labelWidth)),
		m.statusWord(p),
		styles.Elapsed.Render(util.FormatElapsed(p.Elapsed(now))),
	))

	if p.Warning != "" {
		b.WriteString("   " + styles.Warning.Render("⚠ "+util.TruncateANSI(p.Warning, m.lineWidth())) + "\n")
	}

	tail := m.sup.Tail(p.ID)
	if len(tail) == 0 && p.HasOutput {
		// Zero scrollback still surfaces the most recent line.
		b.WriteString("   │ " + styles.OutputLine.Render(util.TruncateANSI(p.LatestLine, m.lineWidth())) + "\n")
	}
	for _, line := range tail {
		prefix := "   │ "
		if line.Stream == output.Stderr {
			prefix = "   ┃ "
		}
		b.WriteString(prefix + styles.OutputLine.Render(util.TruncateANSI(line.Text, m.lineWidth())) + "\n")
	}

	return b.String()
}

// lineWidth is the budget for output and warning lines.
func (m Model) lineWidth() int {
	if m.ready && m.width > 8 {
		return m.width - 8
	}
	return 120
}

// statusWord renders the textual status next to the glyph.
func (m Model) statusWord(p supervisor.Process) string {
	switch p.Status {
	case supervisor.StatusPending:
		return styles.StatusPending.Render("pending")
	case supervisor.StatusRunning:
		return styles.StatusRunning.Render("running")
	case supervisor.StatusExited:
		if p.ExitCode == 0 {
			return styles.StatusSuccess.Render("exit 0")
		}
		return styles.StatusFailed.Render(fmt.Sprintf("exit %d", p.ExitCode))
	case supervisor.StatusSignaled:
		return styles.StatusSignaled.Render(fmt.Sprintf("signal %d", int(p.Signal)))
	case supervisor.StatusKilled:
		return styles.StatusKilled.Render("killed")
	default:
		return ""
	}
}
