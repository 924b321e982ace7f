package tui

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/comux/internal/supervisor"
)

// RunPlain is the non-interactive degradation of the dashboard: instead
// of redrawing a screen it writes one log line per observed status
// transition, driven by the supervisor's coalesced change notifications.
// It returns once every process is terminal.
func RunPlain(sup *supervisor.Supervisor, w io.Writer) error {
	last := make(map[int]supervisor.Status)

	report := func() {
		for _, p := range sup.Snapshot() {
			if prev, seen := last[p.ID]; seen && prev == p.Status {
				continue
			}
			last[p.ID] = p.Status
			switch p.Status {
			case supervisor.StatusPending:
				// Transitions into pending are the initial state; skip.
			case supervisor.StatusRunning:
				fmt.Fprintf(w, "[%d] running  %s\n", p.ID, p.Command.Label)
			case supervisor.StatusExited:
				fmt.Fprintf(w, "[%d] exit %-4d %s\n", p.ID, p.ExitCode, p.Command.Label)
			case supervisor.StatusSignaled:
				fmt.Fprintf(w, "[%d] signal %-2d %s\n", p.ID, int(p.Signal), p.Command.Label)
			case supervisor.StatusKilled:
				fmt.Fprintf(w, "[%d] killed    %s\n", p.ID, p.Command.Label)
			}
			if p.Warning != "" {
				fmt.Fprintf(w, "[%d] warning: %s\n", p.ID, p.Warning)
			}
		}
	}

	report()
	for {
		select {
		case <-sup.Updates():
			report()
		case <-sup.Done():
			report()
			return nil
		}
	}
}
