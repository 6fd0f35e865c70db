package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, tt := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{name: "console info"},
		{name: "json debug", json: true, debug: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if log == nil {
				t.Fatal("expected a logger")
			}
			if tt.debug && !log.Core().Enabled(zapcore.DebugLevel) {
				t.Fatal("expected debug level to be enabled")
			}
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{
			name:     "shorter than limit",
			input:    "short",
			limit:    10,
			expected: "short",
		},
		{
			name:     "exactly at limit",
			input:    "exact",
			limit:    5,
			expected: "exact",
		},
		{
			name:     "truncated with ellipsis",
			input:    "this is a long message",
			limit:    7,
			expected: "this is...",
		},
		{
			name:     "surrounding whitespace trimmed first",
			input:    "   padded   ",
			limit:    10,
			expected: "padded",
		},
		{
			name:     "zero limit",
			input:    "anything",
			limit:    0,
			expected: "",
		},
		{
			name:     "negative limit",
			input:    "anything",
			limit:    -3,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
