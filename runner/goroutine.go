package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// GoroutineRunner executes each work item on its own lightweight in-process
// worker. All workers share the parent's address space; the result container
// is fed through a channel so concurrent completion never loses an entry.
//
// Whether the workers truly run computational work in parallel is decided by
// the injected GlobalLock, not by the runner: with the lock present only one
// worker at a time makes forward progress between blocking points.
type GoroutineRunner[R any] struct {
	globalLock  *GlobalLock
	rateLimiter *rate.Limiter
	resultBuf   int
}

// NewGoroutineRunner creates an in-process concurrent runner with the given
// options.
func NewGoroutineRunner[R any](opts ...Option) *GoroutineRunner[R] {
	cfg := newRunnerConfig(opts...)
	return &GoroutineRunner[R]{
		globalLock:  cfg.globalLock,
		rateLimiter: cfg.rateLimiter,
		resultBuf:   cfg.resultBuf,
	}
}

// Run launches one worker per index and blocks until every worker has
// finished. The span's End is taken only after this join barrier; returning
// before it would let the caller read an incomplete collector.
//
// Collection order is completion order, not index order; consumers must use
// Result.Index when identity matters. A worker error (or panic, converted to
// an error) is returned after all workers finish; results collected before
// the failure are retained in the report.
func (r *GoroutineRunner[R]) Run(ctx context.Context, n int, fn WorkFunc[R]) (*Report[R], error) {
	if n <= 0 {
		return &Report[R]{Span: TimingSpan{Start: time.Now(), End: time.Now()}}, nil
	}

	ctx = withLock(ctx, r.globalLock)

	bufSize := r.resultBuf
	if bufSize < 0 {
		bufSize = n
	}
	resultChan := make(chan Result[R], bufSize)

	span := TimingSpan{Start: time.Now()}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if r.rateLimiter != nil {
				if err := r.rateLimiter.Wait(gctx); err != nil {
					return err
				}
			}

			taskStart := time.Now()
			value, err := r.invoke(gctx, i, fn)
			res := Result[R]{
				Value:    value,
				Err:      err,
				Index:    i,
				TaskTime: time.Since(taskStart),
			}

			select {
			case resultChan <- res:
			case <-gctx.Done():
				return gctx.Err()
			}
			return err
		})
	}

	results := make([]Result[R], 0, n)
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for res := range resultChan {
			results = append(results, res)
		}
	}()

	// Join barrier: every worker has signaled completion past this point.
	runErr := g.Wait()
	close(resultChan)
	collectWg.Wait()

	span.End = time.Now()
	return &Report[R]{Results: results, Span: span}, runErr
}

// invoke runs one work item under the global lock (if configured), with
// panic recovery so a single bad item cannot crash the whole run.
func (r *GoroutineRunner[R]) invoke(ctx context.Context, index int, fn WorkFunc[R]) (value R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buf := make([]byte, 4096)
			stackLen := runtime.Stack(buf, false)
			err = fmt.Errorf("worker %d panic: %v\nstack trace:\n%s", index, rec, buf[:stackLen])
		}
	}()

	r.globalLock.Acquire()
	defer r.globalLock.Release()

	return fn(ctx, index)
}
