package bench

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{10000000, "10,000,000"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatLatency(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{500 * time.Nanosecond, "500ns"},
		{1500 * time.Nanosecond, "1.5µs"},
		{2 * time.Millisecond, "2ms"},
		{1250 * time.Millisecond, "1.25s"},
	}

	for _, tt := range tests {
		if got := FormatLatency(tt.in); got != tt.want {
			t.Errorf("FormatLatency(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
