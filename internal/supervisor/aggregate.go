package supervisor

// killedExitCode is the sentinel a force-killed process contributes to
// exit aggregation: 128+9, the shell convention for death by SIGKILL.
// A process terminated by any other signal contributes 128+signal the
// same way. This is policy, not an external contract; it is chosen to
// match what a user would see running the command alone under a shell.
const killedExitCode = 128 + 9

// Outcome is the process-wide result of a run, computed once every
// process is terminal.
type Outcome struct {
	// Code is the aggregate exit code: 0 only if every process exited 0,
	// otherwise the maximum contribution across processes.
	Code int
	// FailedID is the ordinal of the earliest process contributing the
	// maximum code, for diagnostics. -1 on success.
	FailedID int
}

// Success reports whether every process exited cleanly.
func (o Outcome) Success() bool {
	return o.Code == 0
}

// contribution returns the exit code one process feeds into the
// aggregate maximum.
func contribution(p Process) int {
	switch p.Status {
	case StatusExited:
		return p.ExitCode
	case StatusSignaled:
		return 128 + int(p.Signal)
	case StatusKilled:
		return killedExitCode
	default:
		// Non-terminal processes contribute nothing; Aggregate is only
		// meaningful on a finalized snapshot.
		return 0
	}
}

// Aggregate combines the terminal states of all processes into the
// process-wide exit outcome. Ties for the maximal code resolve to the
// earliest process in original command order; the numeric code is the
// same either way.
func Aggregate(procs []Process) Outcome {
	out := Outcome{Code: 0, FailedID: -1}

	for _, p := range procs {
		c := contribution(p)
		if c > out.Code {
			out.Code = c
			out.FailedID = p.ID
		}
	}

	return out
}
