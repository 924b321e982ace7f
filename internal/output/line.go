// Package output captures child process output streams, splitting them
// into tagged, sequenced lines and retaining a bounded scrollback per
// process for the dashboard.
package output

import "time"

// Stream identifies which output stream a line was captured from.
type Stream string

const (
	// Stdout tags lines read from a process's standard output.
	Stdout Stream = "stdout"
	// Stderr tags lines read from a process's standard error.
	Stderr Stream = "stderr"
)

// Line is one captured line of output from one process stream.
//
// Seq is strictly increasing within a process and never reused,
// regardless of which stream the line came from, so any consumer can
// verify it observed the process's output gap-free and in order.
type Line struct {
	// ProcessID is the run-local ordinal of the producing process.
	ProcessID int `json:"process_id" yaml:"process_id"`
	// Label is the display label of the producing process.
	Label string `json:"label" yaml:"label"`
	// Stream is the source stream tag.
	Stream Stream `json:"stream" yaml:"stream"`
	// Seq is the per-process sequence number, starting at 1.
	Seq uint64 `json:"seq" yaml:"seq"`
	// Time is the wall-clock capture timestamp.
	Time time.Time `json:"time" yaml:"time"`
	// Text is the line content without its terminator.
	Text string `json:"text" yaml:"text"`
}
