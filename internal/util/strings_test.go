package util

import (
	"testing"
	"time"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "shorter than max",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exactly max",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "longer than max",
			input:    "hello world",
			maxLen:   8,
			expected: "hello...",
		},
		{
			name:     "max too small for ellipsis",
			input:    "hello",
			maxLen:   3,
			expected: "...",
		},
		{
			name:     "empty string",
			input:    "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "multibyte runes",
			input:    "日本語のテスト文字列",
			maxLen:   6,
			expected: "日本語...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"zero", 0, "0.0s"},
		{"negative clamps to zero", -time.Second, "0.0s"},
		{"sub second", 400 * time.Millisecond, "0.4s"},
		{"seconds", 4200 * time.Millisecond, "4.2s"},
		{"minutes", 2*time.Minute + 8*time.Second, "2m08s"},
		{"exactly a minute", time.Minute, "1m00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatElapsed(tt.d)
			if got != tt.expected {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.expected)
			}
		})
	}
}
