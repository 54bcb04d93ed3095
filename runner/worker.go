package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// SpawnedWorkerIndex reports whether the current process was spawned as an
// isolated worker, and for which work item.
func SpawnedWorkerIndex() (int, bool) {
	raw, ok := os.LookupEnv(workerIndexEnv)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return index, true
}

// MaybeRunWorker is the re-entry guard for the process runner. The hosting
// main must call it immediately after flag parsing and before any benchmark
// work: in the original invocation it returns without doing anything, while
// in a spawned worker it runs exactly one work item, writes the result
// envelope to stdout and exits the process.
//
// Because the worker exits here, code below the call site (including the
// code that spawns workers) never executes in a child. That is what bounds
// worker creation at exactly N processes.
func MaybeRunWorker[R any](fn WorkFunc[R]) {
	index, ok := SpawnedWorkerIndex()
	if !ok {
		return
	}

	taskStart := time.Now()
	value, err := fn(context.Background(), index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worker %d: %v\n", index, err)
		os.Exit(1)
	}

	rawValue, err := json.Marshal(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worker %d: encoding result: %v\n", index, err)
		os.Exit(1)
	}

	env := workerEnvelope{
		Index:      index,
		Value:      rawValue,
		TaskTimeNS: time.Since(taskStart).Nanoseconds(),
	}

	if err := json.NewEncoder(os.Stdout).Encode(env); err != nil {
		fmt.Fprintf(os.Stderr, "worker %d: writing envelope: %v\n", index, err)
		os.Exit(1)
	}
	os.Exit(0)
}
