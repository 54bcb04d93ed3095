package workload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/utkarsh5026/parabench/runner"
)

func fixedLatencyServer(t *testing.T, latency time.Duration, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(latency)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_ReturnsStatusCode(t *testing.T) {
	server := fixedLatencyServer(t, 0, http.StatusOK)

	fetcher := NewFetcher(server.URL)
	status, err := fetcher.Fetch(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestFetcher_NonSuccessStatusIsAValueNotAnError(t *testing.T) {
	server := fixedLatencyServer(t, 0, http.StatusServiceUnavailable)

	fetcher := NewFetcher(server.URL)
	status, err := fetcher.Fetch(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
}

func TestFetcher_NetworkFailurePropagates(t *testing.T) {
	fetcher := NewFetcher("http://127.0.0.1:1/unreachable")

	if _, err := fetcher.Fetch(context.Background(), 0); err == nil {
		t.Fatal("expected a network error")
	}
}

func TestFetcher_SequentialWaitsAccumulate(t *testing.T) {
	const latency = 50 * time.Millisecond
	server := fixedLatencyServer(t, latency, http.StatusOK)
	fetcher := NewFetcher(server.URL)

	seq := runner.NewSequentialRunner[int]()
	report, err := seq.Run(context.Background(), 4, fetcher.Fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalTime() < 4*latency {
		t.Errorf("sequential fetches should serialize (≥ %v), took %v", 4*latency, report.TotalTime())
	}
}

func TestFetcher_GoroutineWaitsOverlapEvenUnderGlobalLock(t *testing.T) {
	const latency = 50 * time.Millisecond
	server := fixedLatencyServer(t, latency, http.StatusOK)
	fetcher := NewFetcher(server.URL)

	// Fetch releases the lock across the network wait, so four fetches take
	// about one latency unit, not four, even with the lock present.
	lock := runner.NewGlobalLock(true)
	gor := runner.NewGoroutineRunner[int](runner.WithGlobalLock(lock))

	report, err := gor.Run(context.Background(), 4, fetcher.Fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalTime() >= 3*latency {
		t.Errorf("concurrent fetches should overlap (~%v), took %v", latency, report.TotalTime())
	}

	for _, res := range report.Results {
		if res.Value != http.StatusOK {
			t.Errorf("index %d: expected 200, got %d", res.Index, res.Value)
		}
	}
}
