// Package runner provides three runners that execute the same unit of work
// N times under different execution modes.
//
// The runners share a single contract: a WorkFunc is invoked once per work
// item (index 0..N-1) and every invocation's outcome lands in a Report after
// the runner's join barrier. What differs is the scheduling model:
//
//   - SequentialRunner: all N invocations serialized in the calling
//     goroutine, strict dispatch order.
//   - GoroutineRunner: one lightweight in-process worker per item, shared
//     address space, completion order unspecified.
//   - ProcessRunner: one isolated worker process per item, results carried
//     back over an explicit stdout pipe as JSON envelopes.
//
// # Basic Usage
//
//	ctx := context.Background()
//	seq := runner.NewSequentialRunner[uint64]()
//	report, err := seq.Run(ctx, 4, func(ctx context.Context, i int) (uint64, error) {
//	    return workload.SumOfSquares(10_000_000), nil
//	})
//	fmt.Println(report.TotalTime())
//
// # The Global Lock
//
// GoroutineRunner accepts an optional GlobalLock, a capability modeling a
// runtime-wide mutual-exclusion lock: while it is held, only one worker makes
// forward progress on computational work. Work functions that block on I/O
// can release it for the duration of the wait:
//
//	runner.AllowBlocking(ctx, func() {
//	    resp, err = client.Do(req) // other workers run while we wait
//	})
//
// Whether the lock exists at all is an injected configuration choice, not
// something the runners decide.
//
// # Isolated Workers and the Re-Entry Guard
//
// ProcessRunner re-executes the current binary once per work item. The
// hosting main must call MaybeRunWorker before doing anything else; in a
// spawned worker that call runs exactly one work item, writes the result
// envelope to stdout and exits, so worker processes never reach the code
// that spawns workers. Skipping the guard would make every worker spawn N
// more workers.
package runner
