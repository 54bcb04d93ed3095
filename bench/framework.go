package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/utkarsh5026/parabench/runner"
)

// Mode is one execution mode under comparison: a name plus a closure that
// performs the full measured run and returns its report.
type Mode[R any] struct {
	Name string
	Run  func(ctx context.Context) (*runner.Report[R], error)
}

// Comparison executes every mode, with optional warmup and repeat
// iterations, and renders the final comparison. The first mode is the
// baseline all speedups are computed against, so by convention it is the
// sequential one.
type Comparison[R any] struct {
	Name       string
	Modes      []Mode[R]
	Iterations int
	Warmup     int

	// OutputFormat is "table" (default) or "json". JSON output suppresses
	// all decoration so stdout stays parseable.
	OutputFormat string

	System      SystemInfo
	PrintConfig func(out io.Writer)

	// FormatValue renders one collected result value for display.
	// Defaults to fmt.Sprintf("%v", v).
	FormatValue func(v R) string
	ShowValues  bool

	Out io.Writer
}

const (
	settleBetweenIterations = 100 * time.Millisecond
	settleBetweenModes      = 300 * time.Millisecond
)

// Run executes the comparison. A mode error aborts the whole run and
// propagates; there is no partial-comparison reporting.
func (c *Comparison[R]) Run(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	iterations := max(c.Iterations, 1)
	silent := c.OutputFormat == "json"

	if !silent {
		printComparisonHeader(out, c.Name)
		c.System.Print(out)
		if c.PrintConfig != nil {
			c.PrintConfig(out)
		}
		_, _ = Bold.Fprintln(out, "Running comparison...")
		_, _ = fmt.Fprintln(out)
	}

	var bar *progressbar.ProgressBar
	if !silent {
		bar = makeProgressBar(len(c.Modes) * iterations)
	}

	results := make([]ModeResult, 0, len(c.Modes))
	for mi, mode := range c.Modes {
		for w := 0; w < c.Warmup; w++ {
			if _, err := mode.Run(ctx); err != nil {
				return fmt.Errorf("%s warmup: %w", mode.Name, err)
			}
			runtime.GC()
			time.Sleep(settleBetweenIterations)
		}

		iterResults := make([]ModeResult, 0, iterations)
		for iter := 0; iter < iterations; iter++ {
			if bar != nil {
				bar.Describe(fmt.Sprintf("Testing: %s", mode.Name))
			}

			report, err := mode.Run(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", mode.Name, err)
			}
			iterResults = append(iterResults, c.toModeResult(mode.Name, report))

			if bar != nil {
				_ = bar.Add(1)
			}
			if iter < iterations-1 {
				runtime.GC()
				time.Sleep(settleBetweenIterations)
			}
		}

		var final ModeResult
		if iterations == 1 {
			final = iterResults[0]
		} else {
			final = MedianResult(mode.Name, iterResults)
			if !silent {
				PrintIterationStats(out, iterResults)
			}
		}
		results = append(results, final)

		if mi < len(c.Modes)-1 {
			time.Sleep(settleBetweenModes)
		}
	}

	if bar != nil {
		_ = bar.Finish()
		_, _ = fmt.Fprintln(out)
	}

	ComputeSpeedups(results)

	if silent {
		return OutputJSON(out, c.Name, c.System, results)
	}

	renderer := ComparisonRenderer{
		Title:      c.Name,
		ShowValues: c.ShowValues,
		Out:        out,
	}
	renderer.Print(results)
	return nil
}

// toModeResult reduces a runner report to the fields the comparison shows.
func (c *Comparison[R]) toModeResult(mode string, report *runner.Report[R]) ModeResult {
	taskTimes := report.TaskTimes()
	var avg time.Duration
	if len(taskTimes) > 0 {
		var sum time.Duration
		for _, t := range taskTimes {
			sum += t
		}
		avg = sum / time.Duration(len(taskTimes))
	}

	formatValue := c.FormatValue
	if formatValue == nil {
		formatValue = func(v R) string { return fmt.Sprintf("%v", v) }
	}
	values := make([]string, 0, len(report.Results))
	for _, v := range report.Values() {
		values = append(values, formatValue(v))
	}

	return ModeResult{
		Mode:        mode,
		TotalTime:   report.TotalTime(),
		AvgTaskTime: avg,
		Values:      values,
	}
}

func printComparisonHeader(out io.Writer, name string) {
	_, _ = Bold.Fprintln(out, "╔════════════════════════════════════════════════════════════╗")
	_, _ = Bold.Fprintf(out, "║       %-52s ║\n", name)
	_, _ = Bold.Fprintln(out, "╚════════════════════════════════════════════════════════════╝")
	_, _ = fmt.Fprintln(out)
}

func makeProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Running modes"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
