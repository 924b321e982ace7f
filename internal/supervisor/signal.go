package supervisor

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iron-Ham/comux/internal/logging"
)

// SignalCoordinator turns operator interrupt/terminate notifications
// into a two-phase shutdown of the supervised processes: a graceful stop
// request first, then a forced kill once the grace period runs out or a
// second notification arrives. Notifications after every process is
// terminal are no-ops, and any number of repeats stays safe.
type SignalCoordinator struct {
	sup    *Supervisor
	grace  time.Duration
	logger *logging.Logger
	notify chan os.Signal
}

// NewSignalCoordinator creates a coordinator for the given supervisor.
func NewSignalCoordinator(sup *Supervisor, grace time.Duration, logger *logging.Logger) *SignalCoordinator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &SignalCoordinator{
		sup:    sup,
		grace:  grace,
		logger: logger,
		notify: make(chan os.Signal, 4),
	}
}

// Start registers for SIGINT/SIGTERM and runs the escalation loop in the
// background. The loop exits on its own once the run completes.
func (c *SignalCoordinator) Start() {
	signal.Notify(c.notify, os.Interrupt, syscall.SIGTERM)
	go c.run()
}

// Trigger injects a shutdown notification as if an operator signal had
// arrived. The dashboard uses this for ctrl+c keypresses, which the
// terminal delivers as key input rather than SIGINT while the TUI owns
// the terminal.
func (c *SignalCoordinator) Trigger() {
	select {
	case c.notify <- os.Interrupt:
	default:
		// A full buffer already guarantees pending escalation.
	}
}

func (c *SignalCoordinator) run() {
	defer signal.Stop(c.notify)

	select {
	case <-c.sup.Done():
		return
	case <-c.notify:
	}

	c.logger.Info("interrupt received, requesting graceful stop", "grace", c.grace.String())
	c.sup.Interrupt()

	timer := time.NewTimer(c.grace)
	defer timer.Stop()

	select {
	case <-c.sup.Done():
		return
	case <-timer.C:
		c.logger.Warn("grace period expired, force-killing remaining processes")
	case <-c.notify:
		// A second notification escalates immediately; the remaining
		// grace period is not waited out.
		c.logger.Warn("second interrupt, force-killing remaining processes")
	}
	c.sup.Kill()

	// Further notifications remain idempotent kills until the run ends.
	for {
		select {
		case <-c.sup.Done():
			return
		case <-c.notify:
			c.sup.Kill()
		}
	}
}
