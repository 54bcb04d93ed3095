package bench

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSerializeToJSON(t *testing.T) {
	system := CollectSystemInfo(true)
	results := []ModeResult{
		{Mode: "Sequential", TotalTime: 2 * time.Second, AvgTaskTime: 500 * time.Millisecond, Speedup: 1.0},
		{Mode: "Processes", TotalTime: 600 * time.Millisecond, AvgTaskTime: 480 * time.Millisecond, Speedup: 3.33},
	}

	data, err := SerializeToJSON("CPU Comparison", system, results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded JSONComparisonOutput
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Comparison != "CPU Comparison" {
		t.Errorf("expected comparison name preserved, got %q", decoded.Comparison)
	}
	if len(decoded.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(decoded.Results))
	}
	if !decoded.System.GlobalLock {
		t.Error("expected the lock mode recorded in system info")
	}
	if decoded.Results[0].TotalTimeStr != "2.00s" {
		t.Errorf("expected human-readable total time, got %q", decoded.Results[0].TotalTimeStr)
	}
}
