package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMedianResult(t *testing.T) {
	results := []ModeResult{
		{Mode: "Goroutines", TotalTime: 300 * time.Millisecond},
		{Mode: "Goroutines", TotalTime: 100 * time.Millisecond},
		{Mode: "Goroutines", TotalTime: 200 * time.Millisecond},
	}

	median := MedianResult("Goroutines", results)
	if median.TotalTime != 200*time.Millisecond {
		t.Fatalf("expected median 200ms, got %v", median.TotalTime)
	}
	if median.Mode != "Goroutines" {
		t.Fatalf("expected mode name preserved, got %q", median.Mode)
	}
}

func TestMedianResult_Empty(t *testing.T) {
	median := MedianResult("Sequential", nil)
	if median.Mode != "Sequential" || median.TotalTime != 0 {
		t.Fatalf("expected zero-valued result with mode name, got %+v", median)
	}
}

func TestPrintIterationStats(t *testing.T) {
	var buf bytes.Buffer
	PrintIterationStats(&buf, []ModeResult{
		{TotalTime: 100 * time.Millisecond},
		{TotalTime: 200 * time.Millisecond},
		{TotalTime: 300 * time.Millisecond},
	})

	output := buf.String()
	for _, want := range []string{"Min", "Median", "Mean", "Max", "StdDev"} {
		if !strings.Contains(output, want) {
			t.Errorf("iteration stats missing %q:\n%s", want, output)
		}
	}
}

func TestPrintIterationStats_SingleRunIsSilent(t *testing.T) {
	var buf bytes.Buffer
	PrintIterationStats(&buf, []ModeResult{{TotalTime: time.Second}})
	if buf.Len() != 0 {
		t.Fatalf("expected no output for a single run, got %q", buf.String())
	}
}
