package output

import (
	"bufio"
	"io"
	"sync/atomic"
	"time"
)

// Sequencer hands out a process's sequence numbers. The coordinator is
// the sole caller, stamping lines in receipt order, so numbers are
// unique and gap-free across a process's stdout and stderr no matter
// how the two readers interleave.
type Sequencer struct {
	n atomic.Uint64
}

// Next returns the next sequence number, starting at 1.
func (s *Sequencer) Next() uint64 {
	return s.n.Add(1)
}

// ScanLines reads r until EOF, splitting on newline boundaries and
// invoking emit once per line. A final line without a trailing
// terminator is still emitted once, as the last line. Carriage returns
// preceding the terminator are stripped.
//
// Emitted lines carry a capture timestamp taken at emission; sequence
// numbers are stamped downstream, in receipt order. maxLineBytes bounds
// the size of a single line; a longer line stops line splitting and the
// resulting scan error is returned, but only after the rest of the
// stream has been drained, so the writing process can never block on a
// full pipe.
//
// ScanLines blocks until the stream reaches EOF or fails, so it is run
// on its own goroutine, one per stream.
func ScanLines(r io.Reader, processID int, label string, stream Stream, maxLineBytes int, emit func(Line)) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineBytes)

	for scanner.Scan() {
		emit(Line{
			ProcessID: processID,
			Label:     label,
			Stream:    stream,
			Time:      time.Now(),
			Text:      scanner.Text(),
		})
	}

	if err := scanner.Err(); err != nil {
		// The pipe must reach EOF regardless: a child writing into an
		// undrained pipe would block forever and never get reaped.
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}
