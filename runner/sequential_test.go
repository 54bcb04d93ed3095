package runner

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSequentialRunner_BasicFunctionality(t *testing.T) {
	seq := NewSequentialRunner[int]()

	report, err := seq.Run(context.Background(), 5, func(ctx context.Context, index int) (int, error) {
		return index * 2, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(report.Results))
	}

	for i, res := range report.Results {
		if res.Index != i {
			t.Errorf("result %d: expected dispatch order, got index %d", i, res.Index)
		}
		if res.Value != i*2 {
			t.Errorf("result %d: expected %d, got %d", i, i*2, res.Value)
		}
	}
}

func TestSequentialRunner_SingleTask(t *testing.T) {
	seq := NewSequentialRunner[string]()

	report, err := seq.Run(context.Background(), 1, func(ctx context.Context, index int) (string, error) {
		return "done", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	if report.Results[0].Value != "done" {
		t.Errorf("expected %q, got %q", "done", report.Results[0].Value)
	}
}

func TestSequentialRunner_SpanIsConsistent(t *testing.T) {
	seq := NewSequentialRunner[int]()

	report, err := seq.Run(context.Background(), 3, func(ctx context.Context, index int) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return index, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Span.End.Before(report.Span.Start) {
		t.Fatalf("span end %v before start %v", report.Span.End, report.Span.Start)
	}
	if report.TotalTime() < 0 {
		t.Fatalf("negative elapsed time: %v", report.TotalTime())
	}

	// Sequential total covers the sum of the serialized task times.
	var sum time.Duration
	for _, taskTime := range report.TaskTimes() {
		sum += taskTime
	}
	if report.TotalTime() < sum {
		t.Errorf("total %v shorter than sum of task times %v", report.TotalTime(), sum)
	}
}

func TestSequentialRunner_ErrorAbortsRun(t *testing.T) {
	seq := NewSequentialRunner[int]()
	expectedErr := errors.New("work failure")

	var invocations int
	_, err := seq.Run(context.Background(), 10, func(ctx context.Context, index int) (int, error) {
		invocations++
		if index == 3 {
			return 0, expectedErr
		}
		return index, nil
	})

	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if invocations != 4 {
		t.Errorf("expected abort after item 3, got %d invocations", invocations)
	}
}

func TestSequentialRunner_ContextCancellation(t *testing.T) {
	seq := NewSequentialRunner[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := seq.Run(ctx, 5, func(ctx context.Context, index int) (int, error) {
		return index, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
