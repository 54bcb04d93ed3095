package bench

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
)

// ModeResult holds the measured outcome of one execution mode. Duration
// fields carry nanoseconds for machines; the *Str fields are populated for
// human-readable JSON (see serialization.go).
type ModeResult struct {
	Mode        string        `json:"mode"`
	TotalTime   time.Duration `json:"total_time_ns"`
	AvgTaskTime time.Duration `json:"avg_task_time_ns"`
	Speedup     float64       `json:"speedup"`
	Rank        int           `json:"rank"`
	Values      []string      `json:"values,omitempty"`

	TotalTimeStr   string `json:"total_time,omitempty"`
	AvgTaskTimeStr string `json:"avg_task_time,omitempty"`
}

// ComputeSpeedups fills Speedup on every result relative to the first one,
// which by convention is the sequential baseline: "how much faster than
// doing it one at a time".
func ComputeSpeedups(results []ModeResult) {
	if len(results) == 0 {
		return
	}
	baseline := results[0].TotalTime.Seconds()
	for i := range results {
		if secs := results[i].TotalTime.Seconds(); secs > 0 {
			results[i].Speedup = baseline / secs
		}
	}
}

// ComparisonRenderer displays the final comparison for one comparator.
type ComparisonRenderer struct {
	Title      string
	ShowValues bool // echo each mode's collected result values
	Out        io.Writer
}

// Print renders the comparison table, ranked fastest first, followed by the
// key-insight lines and (optionally) the collected values per mode.
// Speedups must already be computed; results arrive in mode declaration
// order with the baseline first.
func (cr *ComparisonRenderer) Print(results []ModeResult) {
	out := cr.Out

	ranked := make([]ModeResult, len(results))
	copy(ranked, results)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].TotalTime < ranked[j].TotalTime
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	_, _ = fmt.Fprintln(out)
	_, _ = Bold.Fprintln(out, "═══════════════════════════════════════════════════════════")
	_, _ = Bold.Fprintln(out, fmt.Sprintf("📊 %s", cr.Title))
	_, _ = Bold.Fprintln(out, "═══════════════════════════════════════════════════════════")

	table := tablewriter.NewWriter(out)
	table.Header("Rank", "Mode", "Total Time", "Avg Task Time", "Speedup")

	for _, r := range ranked {
		speedup := "baseline"
		if r.Mode != results[0].Mode {
			speedup = fmt.Sprintf("%.2fx", r.Speedup)
		}
		_ = table.Append(
			RankIcon(r.Rank),
			r.Mode,
			r.TotalTime.Round(time.Millisecond).String(),
			FormatLatency(r.AvgTaskTime),
			speedup,
		)
	}

	_ = table.Render()
	_, _ = fmt.Fprintln(out)

	cr.printKeyInsights(results)

	if cr.ShowValues {
		for _, r := range results {
			_, _ = fmt.Fprintf(out, "Results (%s): %v\n", r.Mode, r.Values)
		}
		_, _ = fmt.Fprintln(out)
	}
}

// printKeyInsights interprets each concurrent mode's speedup against the
// baseline, using the same thresholds the write-up discusses: below 1.2x the
// mode bought nothing, above 1.5x it achieved real parallelism.
func (cr *ComparisonRenderer) printKeyInsights(results []ModeResult) {
	if len(results) < 2 {
		return
	}

	out := cr.Out
	_, _ = Bold.Fprintln(out, "💡 Key Insights:")
	for _, r := range results[1:] {
		switch {
		case r.Speedup >= 1.5:
			_, _ = Green.Fprintf(out, "  ✓ %s vs %s: %.2fx (true parallel execution)\n",
				r.Mode, results[0].Mode, r.Speedup)
		case r.Speedup >= 1.2:
			_, _ = Yellow.Fprintf(out, "  • %s vs %s: %.2fx (some benefit, not full parallelism)\n",
				r.Mode, results[0].Mode, r.Speedup)
		default:
			_, _ = Yellow.Fprintf(out, "  ⚠ %s vs %s: %.2fx (no speedup; execution is serialized or overhead-bound)\n",
				r.Mode, results[0].Mode, r.Speedup)
		}
	}
	_, _ = fmt.Fprintln(out)
}

// RankIcon returns the medal icon for a rank.
func RankIcon(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", rank)
	}
}
