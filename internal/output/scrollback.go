package output

import "sync"

// Scrollback is a thread-safe, fixed-capacity ring of the most recent
// output lines for one process, plus the latest line seen on any stream.
//
// When the ring is full, appending a new line evicts the oldest one, so
// memory stays bounded no matter how much output a process produces.
// The dashboard reads Lines and Latest; the readers append. All methods
// are safe for concurrent use; Scrollback uses a sync.RWMutex so reads
// never block each other.
type Scrollback struct {
	mu       sync.RWMutex
	lines    []Line
	capacity int
	start    int
	count    int
	latest   Line
	seen     bool
}

// NewScrollback creates a scrollback ring retaining the most recent
// capacity lines. A zero capacity ring still tracks the latest line.
func NewScrollback(capacity int) *Scrollback {
	if capacity < 0 {
		capacity = 0
	}
	return &Scrollback{
		lines:    make([]Line, capacity),
		capacity: capacity,
	}
}

// Append records a captured line, evicting the oldest retained line if
// the ring is full.
func (s *Scrollback) Append(line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = line
	s.seen = true

	if s.capacity == 0 {
		return
	}

	if s.count < s.capacity {
		s.lines[(s.start+s.count)%s.capacity] = line
		s.count++
		return
	}

	// Full: overwrite the oldest slot and advance the start pointer.
	s.lines[s.start] = line
	s.start = (s.start + 1) % s.capacity
}

// Lines returns a copy of the retained lines in chronological order
// (oldest to newest).
func (s *Scrollback) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.lines[(s.start+i)%s.capacity]
	}
	return out
}

// Latest returns the most recently appended line on any stream, and
// whether any line has been appended yet.
func (s *Scrollback) Latest() (Line, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.seen
}

// Len returns the number of retained lines.
func (s *Scrollback) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
