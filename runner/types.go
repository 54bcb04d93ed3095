package runner

import (
	"context"
	"time"
)

// WorkFunc is the unit of repeated work. It receives a context for
// cancellation and the work-item index (0..N-1), and returns the item's
// result. A returned error aborts the run; there is no retry.
//
// Type parameters:
//   - R: The type of result produced by one work item
type WorkFunc[R any] func(ctx context.Context, index int) (R, error)

// Result is the outcome of one work item. Index carries the item's identity
// because concurrent runners give no guarantee on collection order.
type Result[R any] struct {
	Value    R
	Err      error
	Index    int
	TaskTime time.Duration
}

// TimingSpan bounds one execution mode. End is taken only after the runner's
// join barrier, so Elapsed always covers every worker including startup cost.
type TimingSpan struct {
	Start time.Time
	End   time.Time
}

// Elapsed returns End - Start. It is never negative for spans produced by
// the runners in this package.
func (ts TimingSpan) Elapsed() time.Duration {
	return ts.End.Sub(ts.Start)
}

// Report is what every runner returns: one Result per dispatched work item
// plus the span bounding the whole run.
type Report[R any] struct {
	Results []Result[R]
	Span    TimingSpan
}

// TotalTime returns the wall-clock duration of the run.
func (r *Report[R]) TotalTime() time.Duration {
	return r.Span.Elapsed()
}

// Values returns the collected result values in collection order.
func (r *Report[R]) Values() []R {
	values := make([]R, len(r.Results))
	for i, res := range r.Results {
		values[i] = res.Value
	}
	return values
}

// TaskTimes returns the per-item execution times in collection order.
func (r *Report[R]) TaskTimes() []time.Duration {
	times := make([]time.Duration, len(r.Results))
	for i, res := range r.Results {
		times[i] = res.TaskTime
	}
	return times
}
