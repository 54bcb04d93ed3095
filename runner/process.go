package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Environment markers for spawned workers. Their presence is what separates
// a worker process from the original invocation target.
const (
	workerIndexEnv = "PARABENCH_WORKER_INDEX"
)

// workerEnvelope is the one message a worker process writes to its stdout
// pipe. The pipe is the explicit cross-process channel: the parent's result
// container never shares memory with a child.
type workerEnvelope struct {
	Index      int             `json:"index"`
	Value      json.RawMessage `json:"value"`
	TaskTimeNS int64           `json:"task_time_ns"`
}

// ProcessRunner executes each work item in an isolated worker process,
// spawned by re-executing the current binary with the parent's arguments.
// Spawn overhead is part of what this mode measures, so the timing span
// opens before the first fork and closes after the last wait.
//
// The hosting main must call MaybeRunWorker before any other work; without
// that guard every spawned worker would re-enter the comparison and spawn
// workers of its own, without bound.
type ProcessRunner[R any] struct {
	extraEnv []string
}

// NewProcessRunner creates an isolated-process runner with the given
// options. Only WithWorkerEnv applies; the global lock is meaningless across
// address spaces and rate limiting child spawns is out of scope.
func NewProcessRunner[R any](opts ...Option) *ProcessRunner[R] {
	cfg := newRunnerConfig(opts...)
	return &ProcessRunner[R]{extraEnv: cfg.extraEnv}
}

// Run spawns exactly n worker processes, waits for all of them to exit, and
// decodes one result envelope from each worker's stdout. A worker that exits
// abnormally or emits a malformed envelope surfaces as an error naming its
// index; there is no retry, and a crashed child cannot corrupt the parent's
// collector because nothing is shared.
func (r *ProcessRunner[R]) Run(ctx context.Context, n int) (*Report[R], error) {
	if n <= 0 {
		return &Report[R]{Span: TimingSpan{Start: time.Now(), End: time.Now()}}, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating executable for worker spawn: %w", err)
	}

	span := TimingSpan{Start: time.Now()}

	type spawned struct {
		cmd   *exec.Cmd
		out   *bytes.Buffer
		index int
	}

	workers := make([]spawned, 0, n)
	for i := 0; i < n; i++ {
		cmd := exec.CommandContext(ctx, exe, os.Args[1:]...)
		out := &bytes.Buffer{}
		cmd.Stdout = out
		cmd.Stderr = os.Stderr
		cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%d", workerIndexEnv, i))
		cmd.Env = append(cmd.Env, r.extraEnv...)

		if err := cmd.Start(); err != nil {
			// Workers already started still get joined so they cannot
			// outlive the failed run.
			for _, w := range workers {
				_ = w.cmd.Wait()
			}
			return nil, fmt.Errorf("spawning worker %d: %w", i, err)
		}
		workers = append(workers, spawned{cmd: cmd, out: out, index: i})
	}

	results := make([]Result[R], 0, n)
	var firstErr error
	for _, w := range workers {
		// Join barrier: the parent reads nothing from a worker before it
		// has fully exited.
		if err := w.cmd.Wait(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("worker %d exited abnormally: %w", w.index, err)
			}
			continue
		}

		res, err := decodeEnvelope[R](w.out.Bytes())
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("worker %d: %w", w.index, err)
			}
			continue
		}
		results = append(results, res)
	}

	span.End = time.Now()
	if firstErr != nil {
		return &Report[R]{Results: results, Span: span}, firstErr
	}
	return &Report[R]{Results: results, Span: span}, nil
}

func decodeEnvelope[R any](output []byte) (Result[R], error) {
	var env workerEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(output), &env); err != nil {
		return Result[R]{}, fmt.Errorf("decoding result envelope: %w", err)
	}

	var value R
	if err := json.Unmarshal(env.Value, &value); err != nil {
		return Result[R]{}, fmt.Errorf("decoding result value: %w", err)
	}

	return Result[R]{
		Value:    value,
		Index:    env.Index,
		TaskTime: time.Duration(env.TaskTimeNS),
	}, nil
}
