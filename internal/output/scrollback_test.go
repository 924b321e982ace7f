package output

import (
	"fmt"
	"sync"
	"testing"
)

func line(seq uint64, text string) Line {
	return Line{ProcessID: 1, Stream: Stdout, Seq: seq, Text: text}
}

func TestScrollbackAppendAndLines(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		appends  []string
		expected []string
	}{
		{
			name:     "under capacity",
			capacity: 5,
			appends:  []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "exactly capacity",
			capacity: 3,
			appends:  []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "oldest evicted first",
			capacity: 3,
			appends:  []string{"a", "b", "c", "d", "e"},
			expected: []string{"c", "d", "e"},
		},
		{
			name:     "zero capacity retains nothing",
			capacity: 0,
			appends:  []string{"a", "b"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewScrollback(tt.capacity)
			for i, text := range tt.appends {
				sb.Append(line(uint64(i+1), text))
			}

			got := sb.Lines()
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.expected))
			}
			for i, want := range tt.expected {
				if got[i].Text != want {
					t.Errorf("lines[%d].Text = %q, want %q", i, got[i].Text, want)
				}
			}
		})
	}
}

func TestScrollbackLatest(t *testing.T) {
	sb := NewScrollback(2)

	if _, ok := sb.Latest(); ok {
		t.Error("Latest should report false before any append")
	}

	sb.Append(line(1, "first"))
	sb.Append(line(2, "second"))

	latest, ok := sb.Latest()
	if !ok || latest.Text != "second" {
		t.Errorf("Latest = (%q, %v), want (\"second\", true)", latest.Text, ok)
	}

	// Latest is tracked even with zero retained scrollback.
	empty := NewScrollback(0)
	empty.Append(line(1, "only"))
	latest, ok = empty.Latest()
	if !ok || latest.Text != "only" {
		t.Errorf("zero-capacity Latest = (%q, %v), want (\"only\", true)", latest.Text, ok)
	}
}

func TestScrollbackConcurrentAccess(t *testing.T) {
	sb := NewScrollback(16)
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				sb.Append(line(uint64(i), fmt.Sprintf("w%d-%d", w, i)))
			}
		}(w)
	}
	for r := 0; r < 2; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = sb.Lines()
				_, _ = sb.Latest()
				_ = sb.Len()
			}
		}()
	}

	wg.Wait()

	if sb.Len() != 16 {
		t.Errorf("Len = %d, want full ring of 16", sb.Len())
	}
}
