package supervisor

import (
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Iron-Ham/comux/internal/errors"
	"github.com/Iron-Ham/comux/internal/logging"
	"github.com/Iron-Ham/comux/internal/output"
	"github.com/Iron-Ham/comux/internal/task"
)

// eventKind discriminates coordinator events.
type eventKind int

const (
	eventStarted eventKind = iota
	eventSpawnFailed
	eventLine
	eventStreamError
	eventExited
)

// event is one message from a per-process goroutine to the coordinator.
// The coordinator is the only component that mutates process state, and
// it does so strictly in event receipt order.
type event struct {
	kind eventKind
	id   int
	line output.Line
	err  error

	// exit details, valid for eventExited
	exitCode int
	signal   syscall.Signal
	signaled bool
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Supervisor) { s.logger = logger }
}

// WithProgram sets the shell indirection used to execute commands,
// split on whitespace (e.g. "/bin/sh -c"). The command text becomes the
// final argument.
func WithProgram(program string) Option {
	return func(s *Supervisor) { s.program = strings.Fields(program) }
}

// WithScrollback sets how many recent output lines are retained per
// process for the dashboard.
func WithScrollback(lines int) Option {
	return func(s *Supervisor) { s.scrollbackLines = lines }
}

// WithMaxLineBytes caps the length of a single captured output line.
func WithMaxLineBytes(n int) Option {
	return func(s *Supervisor) { s.maxLineBytes = n }
}

// WithLineHandler switches the run into propagation mode: every captured
// line is forwarded to handler in receipt order, from the coordinator
// goroutine, instead of being retained for the dashboard. Per-process
// line order is preserved; cross-process interleaving follows arrival.
func WithLineHandler(handler func(output.Line)) Option {
	return func(s *Supervisor) { s.onLine = handler }
}

// Supervisor owns the authoritative state of every spawned process.
type Supervisor struct {
	mu    sync.RWMutex
	procs []*procState

	program         []string
	scrollbackLines int
	maxLineBytes    int
	onLine          func(output.Line)
	logger          *logging.Logger

	events  chan event
	updates chan struct{}
	done    chan struct{}

	started bool
}

// New creates a Supervisor for the given unique commands. The commands
// keep their load order; process ordinals are assigned from it.
func New(commands []task.Command, opts ...Option) (*Supervisor, error) {
	s := &Supervisor{
		program:         []string{"/bin/sh", "-c"},
		scrollbackLines: 3,
		maxLineBytes:    1024 * 1024,
		logger:          logging.NopLogger(),
		events:          make(chan event, 64),
		updates:         make(chan struct{}, 1),
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(s.program) == 0 {
		return nil, errors.NewConfigError("run.program", errors.ErrEmptyProgram)
	}
	if len(commands) == 0 {
		return nil, errors.NewConfigError("commands", errors.ErrNoCommands)
	}

	s.procs = make([]*procState, len(commands))
	for i, cmd := range commands {
		s.procs[i] = &procState{
			id:         i,
			command:    cmd,
			status:     StatusPending,
			scrollback: output.NewScrollback(s.scrollbackLines),
		}
	}

	return s, nil
}

// Start spawns every process and begins coordinating events. Spawn
// failures are process-local: the affected process is immediately
// terminal with exit code 127 and siblings are unaffected, so Start
// itself never fails once configuration is valid.
func (s *Supervisor) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	// The coordinator must be consuming before any spawn emits events,
	// or a large command set could fill the event buffer.
	go s.coordinate()

	for _, p := range s.procs {
		s.spawn(p)
	}
}

// spawn starts one child process and its reader/waiter goroutines.
func (s *Supervisor) spawn(p *procState) {
	cmd := exec.Command(s.program[0], append(s.program[1:], p.command.Text)...)
	// Each child gets its own process group so shutdown signals reach
	// the whole shell pipeline, not just the shell itself.
	setProcessGroup(cmd)
	cmd.Stdin = nil

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.reportSpawnFailure(p, err)
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.reportSpawnFailure(p, err)
		return
	}

	if err := cmd.Start(); err != nil {
		s.reportSpawnFailure(p, err)
		return
	}

	s.mu.Lock()
	p.cmd = cmd
	s.mu.Unlock()

	s.events <- event{kind: eventStarted, id: p.id}
	s.logger.WithProcess(p.id).Info("process started", "command", p.command.Text, "pid", cmd.Process.Pid)

	var readers sync.WaitGroup
	readers.Add(2)

	emit := func(line output.Line) {
		s.events <- event{kind: eventLine, id: p.id, line: line}
	}

	go func() {
		defer readers.Done()
		if err := output.ScanLines(stdout, p.id, p.command.Label, output.Stdout, s.maxLineBytes, emit); err != nil {
			s.events <- event{kind: eventStreamError, id: p.id, err: err}
		}
	}()
	go func() {
		defer readers.Done()
		if err := output.ScanLines(stderr, p.id, p.command.Label, output.Stderr, s.maxLineBytes, emit); err != nil {
			s.events <- event{kind: eventStreamError, id: p.id, err: err}
		}
	}()

	go func() {
		// Drain both streams before reaping so no line event can arrive
		// after the exit event: the per-process event stream terminates
		// exactly at terminal status.
		readers.Wait()
		err := cmd.Wait()

		ev := event{kind: eventExited, id: p.id}
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				ws, ok := exitErr.Sys().(syscall.WaitStatus)
				if ok && ws.Signaled() {
					ev.signaled = true
					ev.signal = ws.Signal()
				} else {
					ev.exitCode = exitErr.ExitCode()
				}
			} else {
				// Wait itself failed; treat as a generic failure.
				ev.exitCode = 1
			}
		}
		s.events <- ev
	}()
}

// reportSpawnFailure routes a spawn error through the coordinator so the
// process reaches a terminal state like any other.
func (s *Supervisor) reportSpawnFailure(p *procState, cause error) {
	err := errors.NewSpawnError(p.command.Text, cause)
	s.logger.WithProcess(p.id).Error("spawn failed", "error", err)
	s.events <- event{kind: eventSpawnFailed, id: p.id, err: err}
}

// coordinate is the single-writer event loop. It runs until every
// process is terminal, then closes Done.
func (s *Supervisor) coordinate() {
	remaining := len(s.procs)

	for remaining > 0 {
		ev := <-s.events
		s.apply(ev, &remaining)
		s.notify()
	}

	close(s.done)
}

// apply folds one event into the process table.
func (s *Supervisor) apply(ev event, remaining *int) {
	// Lines are stamped here, in receipt order, so per-process sequence
	// numbers stay gap-free even when the two stream readers race into
	// the event channel.
	if ev.kind == eventLine {
		ev.line.Seq = s.procs[ev.id].seq.Next()
		// Propagation mode forwards lines without touching shared state,
		// and outside the lock so the handler may take snapshots.
		if s.onLine != nil {
			s.onLine(ev.line)
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.procs[ev.id]

	switch ev.kind {
	case eventStarted:
		if p.status != StatusPending {
			return
		}
		p.status = StatusRunning
		p.startedAt = time.Now()

	case eventSpawnFailed:
		if p.status.Terminal() {
			return
		}
		p.status = StatusExited
		p.exitCode = 127
		p.warning = ev.err.Error()
		p.endedAt = time.Now()
		p.cmd = nil
		*remaining--

	case eventLine:
		p.scrollback.Append(ev.line)

	case eventStreamError:
		// A read failure does not change the process's exit status; it
		// is surfaced as a warning on the row.
		p.warning = "stream read failed: " + ev.err.Error()
		s.logger.WithProcess(p.id).Warn("stream read failed", "error", ev.err)

	case eventExited:
		if p.status.Terminal() {
			return
		}
		switch {
		case ev.signaled && p.forceKilled:
			p.status = StatusKilled
			p.signal = ev.signal
		case ev.signaled:
			p.status = StatusSignaled
			p.signal = ev.signal
		default:
			p.status = StatusExited
			p.exitCode = ev.exitCode
		}
		p.endedAt = time.Now()
		p.cmd = nil
		*remaining--
		s.logger.WithProcess(p.id).Info("process finished",
			"status", p.status.String(), "exit_code", p.exitCode)
	}
}

// notify coalesces change notifications: a pending notification absorbs
// later ones until consumed.
func (s *Supervisor) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Snapshot returns an immutable view of every process, in command order.
func (s *Supervisor) Snapshot() []Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Process, len(s.procs))
	for i, p := range s.procs {
		out[i] = p.snapshot()
	}
	return out
}

// Tail returns the retained scrollback lines for one process, oldest
// first. Only meaningful in dashboard mode.
func (s *Supervisor) Tail(id int) []output.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 0 || id >= len(s.procs) {
		return nil
	}
	return s.procs[id].scrollback.Lines()
}

// Updates returns a channel receiving coalesced change notifications.
func (s *Supervisor) Updates() <-chan struct{} {
	return s.updates
}

// Done returns a channel closed once every process is terminal.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until every process is terminal, then returns the final
// run outcome.
func (s *Supervisor) Wait() Outcome {
	<-s.done
	return Aggregate(s.Snapshot())
}

// Interrupt broadcasts a graceful-stop request to every running process
// group. Delivery failures (the child already exited) are skipped: the
// waiter will report the real terminal status regardless.
func (s *Supervisor) Interrupt() {
	s.signalRunning(syscall.SIGINT, false)
}

// Kill force-terminates every still-running process group. Processes
// that die from this signal are reported as killed, not signaled.
func (s *Supervisor) Kill() {
	s.signalRunning(syscall.SIGKILL, true)
}

func (s *Supervisor) signalRunning(sig syscall.Signal, force bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.procs {
		// Key on the spawned handle, not the status: a child can be alive
		// before its started event is applied, and it must not dodge
		// shutdown in that window. cmd is cleared once terminal.
		if p.cmd == nil || p.cmd.Process == nil {
			continue
		}
		if force {
			p.forceKilled = true
		}
		if err := signalGroup(p.cmd, sig); err != nil {
			s.logger.WithProcess(p.id).Debug("signal delivery failed",
				"signal", sig.String(), "error", err)
		}
	}
}
