// Package supervisor spawns one child process per command, owns the
// authoritative lifecycle state of every child, and coordinates graceful
// then forced shutdown.
//
// All state mutation happens on a single coordinator goroutine fed by
// typed events from per-process reader and waiter goroutines; every
// other component only ever sees immutable snapshots. This keeps the
// process table race-free without broad locking across components.
package supervisor

import (
	"os/exec"
	"syscall"
	"time"

	"github.com/Iron-Ham/comux/internal/output"
	"github.com/Iron-Ham/comux/internal/task"
)

// Status is the lifecycle state of one supervised process.
// Transitions are strictly forward: Pending → Running → one of the
// terminal states. Terminal states are write-once.
type Status int

const (
	// StatusPending means the process has not been spawned yet.
	StatusPending Status = iota
	// StatusRunning means the process is alive.
	StatusRunning
	// StatusExited means the process terminated on its own with an exit code.
	StatusExited
	// StatusSignaled means the process was terminated by a signal it did
	// not receive from the forced-kill path.
	StatusSignaled
	// StatusKilled means the process was force-killed by the shutdown
	// escalation.
	StatusKilled
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusExited:
		return "exited"
	case StatusSignaled:
		return "signaled"
	case StatusKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is one of the terminal states.
func (s Status) Terminal() bool {
	return s == StatusExited || s == StatusSignaled || s == StatusKilled
}

// Process is an immutable snapshot of one supervised process, safe to
// hand to the renderer, encoder, and exit aggregator.
type Process struct {
	// ID is the run-local ordinal, stable for the whole run. Not the OS pid.
	ID int
	// Command is the command this process runs.
	Command task.Command
	// Status is the lifecycle state at snapshot time.
	Status Status
	// ExitCode is the exit code, valid only when Status is StatusExited.
	ExitCode int
	// Signal is the terminating signal, valid when Status is
	// StatusSignaled or StatusKilled.
	Signal syscall.Signal
	// StartedAt is when the process was spawned; zero while pending.
	StartedAt time.Time
	// EndedAt is when the process reached a terminal status; zero before.
	EndedAt time.Time
	// Warning is a non-fatal problem surfaced on this process's row,
	// such as a stream read failure. Empty when none.
	Warning string
	// LatestLine is the most recent captured output line, if any.
	LatestLine string
	// HasOutput reports whether any output line has been captured.
	HasOutput bool
}

// Elapsed returns how long the process has been running as of now, or
// its total runtime once terminal. Zero while pending.
func (p Process) Elapsed(now time.Time) time.Duration {
	if p.StartedAt.IsZero() {
		return 0
	}
	if !p.EndedAt.IsZero() {
		return p.EndedAt.Sub(p.StartedAt)
	}
	return now.Sub(p.StartedAt)
}

// procState is the mutable record behind a Process snapshot. It is owned
// by the coordinator goroutine; cmd and forceKilled are additionally
// touched by the shutdown path under the supervisor's lock.
type procState struct {
	id      int
	command task.Command
	status  Status

	exitCode int
	signal   syscall.Signal

	startedAt time.Time
	endedAt   time.Time
	warning   string

	cmd         *exec.Cmd
	forceKilled bool

	seq        output.Sequencer
	scrollback *output.Scrollback
}

// snapshot copies the current state into an immutable Process.
func (p *procState) snapshot() Process {
	s := Process{
		ID:        p.id,
		Command:   p.command,
		Status:    p.status,
		ExitCode:  p.exitCode,
		Signal:    p.signal,
		StartedAt: p.startedAt,
		EndedAt:   p.endedAt,
		Warning:   p.warning,
	}
	if latest, ok := p.scrollback.Latest(); ok {
		s.LatestLine = latest.Text
		s.HasOutput = true
	}
	return s
}
