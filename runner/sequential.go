package runner

import (
	"context"
	"fmt"
	"time"
)

// SequentialRunner executes every work item in the calling goroutine, one
// after another. It is the baseline the concurrent modes are compared
// against: total time is the sum of the individual task times.
type SequentialRunner[R any] struct{}

// NewSequentialRunner creates a sequential runner. It takes no options;
// there is nothing to configure about running things one at a time.
func NewSequentialRunner[R any]() *SequentialRunner[R] {
	return &SequentialRunner[R]{}
}

// Run invokes fn for indexes 0..n-1 in order. Results arrive in dispatch
// order. The first error (or context cancellation) aborts the run and
// propagates; partial results are discarded.
func (r *SequentialRunner[R]) Run(ctx context.Context, n int, fn WorkFunc[R]) (*Report[R], error) {
	results := make([]Result[R], 0, n)
	span := TimingSpan{Start: time.Now()}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		taskStart := time.Now()
		value, err := fn(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("work item %d: %w", i, err)
		}

		results = append(results, Result[R]{
			Value:    value,
			Index:    i,
			TaskTime: time.Since(taskStart),
		})
	}

	span.End = time.Now()
	return &Report[R]{Results: results, Span: span}, nil
}
