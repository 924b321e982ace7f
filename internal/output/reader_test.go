package output

import (
	"strings"
	"testing"
)

func collect(t *testing.T, input string, maxLine int) []Line {
	t.Helper()
	var lines []Line
	err := ScanLines(strings.NewReader(input), 1, "cmd", Stdout, maxLine, func(l Line) {
		lines = append(lines, l)
	})
	if err != nil {
		t.Fatalf("ScanLines failed: %v", err)
	}
	return lines
}

func TestScanLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "terminated lines",
			input:    "one\ntwo\nthree\n",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "final partial line emitted",
			input:    "one\ntwo",
			expected: []string{"one", "two"},
		},
		{
			name:     "crlf terminators stripped",
			input:    "one\r\ntwo\r\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "empty lines preserved",
			input:    "one\n\ntwo\n",
			expected: []string{"one", "", "two"},
		},
		{
			name:     "empty stream",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := collect(t, tt.input, 1024*1024)
			if len(lines) != len(tt.expected) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.expected))
			}
			for i, want := range tt.expected {
				if lines[i].Text != want {
					t.Errorf("line[%d].Text = %q, want %q", i, lines[i].Text, want)
				}
			}
		})
	}
}

func TestScanLinesTagsAndTimestamps(t *testing.T) {
	lines := collect(t, "a\nb\nc\nd\n", 1024*1024)

	for i, line := range lines {
		if line.Time.IsZero() {
			t.Errorf("line[%d] has zero capture timestamp", i)
		}
		if line.Stream != Stdout {
			t.Errorf("line[%d].Stream = %q, want stdout", i, line.Stream)
		}
		if line.ProcessID != 1 || line.Label != "cmd" {
			t.Errorf("line[%d] mistagged: id=%d label=%q", i, line.ProcessID, line.Label)
		}
	}
}

func TestSequencer(t *testing.T) {
	var seq Sequencer

	for want := uint64(1); want <= 4; want++ {
		if got := seq.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestScanLinesOverlongLineDrainsStream(t *testing.T) {
	input := strings.Repeat("x", 4096) + "\nafter\n"
	r := strings.NewReader(input)

	err := ScanLines(r, 1, "cmd", Stdout, 1024, func(Line) {})
	if err == nil {
		t.Error("expected scan error for line exceeding maxLineBytes")
	}

	// The remainder must be consumed so the writing end can reach EOF
	// instead of blocking on a full pipe.
	if r.Len() != 0 {
		t.Errorf("%d bytes left unread after scan error", r.Len())
	}
}
