// Package task turns raw command text from arguments and task files into
// an ordered, deduplicated set of commands to run.
package task

// Origin describes where a command was supplied.
type Origin int

const (
	// OriginArgument marks a command supplied as a literal -c/--command flag.
	OriginArgument Origin = iota
	// OriginFile marks a command loaded from a task file.
	OriginFile
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginArgument:
		return "argument"
	case OriginFile:
		return "file"
	default:
		return "unknown"
	}
}

// Command is one unique command line to run as a child process.
// Its identity is the exact trimmed command text, which is also the
// deduplication key. Commands are immutable once constructed.
type Command struct {
	// Text is the trimmed command line, executed via shell indirection.
	Text string
	// Label is the display name shown in the dashboard. Defaults to Text.
	Label string
	// Origin records whether the command came from an argument or a file.
	Origin Origin
}
