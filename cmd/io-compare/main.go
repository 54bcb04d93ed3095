// Command io-compare measures a fixed I/O-bound workload (an HTTP GET
// against one URL) under three execution modes (sequential, goroutines,
// isolated processes) and prints a comparison of wall-clock times along
// with the collected status codes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/utkarsh5026/parabench/bench"
	"github.com/utkarsh5026/parabench/runner"
	"github.com/utkarsh5026/parabench/workload"
)

func main() {
	bench.EnableANSI()

	urlFlag := flag.String("url", workload.DefaultURL, "URL every work item fetches")
	tasksFlag := flag.Int("tasks", 4, "Number of work items per execution mode")
	globalLockFlag := flag.Bool("globallock", true, "Serialize in-process workers behind a global execution lock (released during network waits)")
	rpsFlag := flag.Float64("rps", 0, "Max request starts per second for the goroutine mode (0 = unlimited)")
	iterationsFlag := flag.Int("iterations", 1, "Number of measured runs per mode")
	warmupFlag := flag.Int("warmup", 0, "Number of warmup runs per mode")
	outputFormatFlag := flag.String("output-format", "table", "Output format: 'table' or 'json'")
	flag.Parse()

	fetcher := workload.NewFetcher(*urlFlag)

	// Re-entry guard: a spawned worker process performs one fetch here and
	// exits before reaching any of the comparison code below.
	runner.MaybeRunWorker(fetcher.Fetch)

	if err := run(fetcher, ioConfig{
		url:          *urlFlag,
		tasks:        *tasksFlag,
		globalLock:   *globalLockFlag,
		rps:          *rpsFlag,
		iterations:   *iterationsFlag,
		warmup:       *warmupFlag,
		outputFormat: *outputFormatFlag,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "io-compare: %v\n", err)
		os.Exit(1)
	}
}

type ioConfig struct {
	url          string
	tasks        int
	globalLock   bool
	rps          float64
	iterations   int
	warmup       int
	outputFormat string
}

func run(fetcher *workload.Fetcher, cfg ioConfig) error {
	lock := runner.NewGlobalLock(cfg.globalLock)

	goroutineOpts := []runner.Option{runner.WithGlobalLock(lock)}
	if cfg.rps > 0 {
		goroutineOpts = append(goroutineOpts, runner.WithRateLimit(cfg.rps, cfg.tasks))
	}

	sequential := runner.NewSequentialRunner[int]()
	goroutines := runner.NewGoroutineRunner[int](goroutineOpts...)
	processes := runner.NewProcessRunner[int]()

	comparison := &bench.Comparison[int]{
		Name: "I/O-Bound Execution Mode Comparison",
		Modes: []bench.Mode[int]{
			{Name: "Sequential", Run: func(ctx context.Context) (*runner.Report[int], error) {
				return sequential.Run(ctx, cfg.tasks, fetcher.Fetch)
			}},
			{Name: "Goroutines", Run: func(ctx context.Context) (*runner.Report[int], error) {
				return goroutines.Run(ctx, cfg.tasks, fetcher.Fetch)
			}},
			{Name: "Processes", Run: func(ctx context.Context) (*runner.Report[int], error) {
				return processes.Run(ctx, cfg.tasks)
			}},
		},
		Iterations:   cfg.iterations,
		Warmup:       cfg.warmup,
		OutputFormat: cfg.outputFormat,
		System:       bench.CollectSystemInfo(cfg.globalLock),
		FormatValue:  strconv.Itoa,
		ShowValues:   true,
		PrintConfig: func(out io.Writer) {
			rps := "unlimited"
			if cfg.rps > 0 {
				rps = fmt.Sprintf("%.1f req/s", cfg.rps)
			}
			cp := bench.ConfigPrinter{
				Title: "I/O Comparison Configuration:",
				Tasks: cfg.tasks,
				Params: []bench.Param{
					{Key: "URL", Value: cfg.url},
					{Key: "Rate Limit", Value: rps},
					{Key: "Workload", Value: "HTTP GET, result is the status code"},
				},
			}
			cp.Print(out)
		},
	}

	return comparison.Run(context.Background())
}
