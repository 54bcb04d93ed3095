// Command cpu-compare measures a fixed CPU-bound workload (sum of squares)
// under three execution modes (sequential, goroutines, isolated processes)
// and prints a comparison of wall-clock times.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/utkarsh5026/parabench/bench"
	"github.com/utkarsh5026/parabench/runner"
	"github.com/utkarsh5026/parabench/workload"
)

func main() {
	bench.EnableANSI()

	tasksFlag := flag.Int("tasks", 4, "Number of work items per execution mode")
	complexityFlag := flag.Int("complexity", 10_000_000, "Sum-of-squares iterations per work item")
	globalLockFlag := flag.Bool("globallock", true, "Serialize in-process workers behind a global execution lock")
	iterationsFlag := flag.Int("iterations", 1, "Number of measured runs per mode")
	warmupFlag := flag.Int("warmup", 0, "Number of warmup runs per mode")
	outputFormatFlag := flag.String("output-format", "table", "Output format: 'table' or 'json'")
	cpuProfileFlag := flag.String("cpuprofile", "", "Write CPU profile to file")
	memProfileFlag := flag.String("memprofile", "", "Write memory profile to file")
	flag.Parse()

	work := func(_ context.Context, _ int) (uint64, error) {
		return workload.SumOfSquares(*complexityFlag), nil
	}

	// Re-entry guard: a spawned worker process runs exactly one work item
	// here and exits before reaching any of the comparison code below.
	runner.MaybeRunWorker(work)

	if err := run(work, config{
		tasks:        *tasksFlag,
		complexity:   *complexityFlag,
		globalLock:   *globalLockFlag,
		iterations:   *iterationsFlag,
		warmup:       *warmupFlag,
		outputFormat: *outputFormatFlag,
		cpuProfile:   *cpuProfileFlag,
		memProfile:   *memProfileFlag,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "cpu-compare: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	tasks        int
	complexity   int
	globalLock   bool
	iterations   int
	warmup       int
	outputFormat string
	cpuProfile   string
	memProfile   string
}

func run(work runner.WorkFunc[uint64], cfg config) error {
	cleanup, err := bench.SetupProfiling(cfg.cpuProfile, cfg.memProfile)
	if err != nil {
		return err
	}
	defer cleanup()

	lock := runner.NewGlobalLock(cfg.globalLock)
	sequential := runner.NewSequentialRunner[uint64]()
	goroutines := runner.NewGoroutineRunner[uint64](runner.WithGlobalLock(lock))
	processes := runner.NewProcessRunner[uint64]()

	comparison := &bench.Comparison[uint64]{
		Name: "CPU-Bound Execution Mode Comparison",
		Modes: []bench.Mode[uint64]{
			{Name: "Sequential", Run: func(ctx context.Context) (*runner.Report[uint64], error) {
				return sequential.Run(ctx, cfg.tasks, work)
			}},
			{Name: "Goroutines", Run: func(ctx context.Context) (*runner.Report[uint64], error) {
				return goroutines.Run(ctx, cfg.tasks, work)
			}},
			{Name: "Processes", Run: func(ctx context.Context) (*runner.Report[uint64], error) {
				return processes.Run(ctx, cfg.tasks)
			}},
		},
		Iterations:   cfg.iterations,
		Warmup:       cfg.warmup,
		OutputFormat: cfg.outputFormat,
		System:       bench.CollectSystemInfo(cfg.globalLock),
		PrintConfig: func(out io.Writer) {
			cp := bench.ConfigPrinter{
				Title: "CPU Comparison Configuration:",
				Tasks: cfg.tasks,
				Params: []bench.Param{
					{Key: "Complexity", Value: fmt.Sprintf("%s iterations per task", bench.FormatNumber(cfg.complexity))},
					{Key: "Workload", Value: "sum of squares (deterministic)"},
				},
			}
			cp.Print(out)
		},
	}

	return comparison.Run(context.Background())
}
