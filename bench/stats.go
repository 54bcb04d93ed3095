package bench

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"time"
)

// MedianResult picks the median-by-total-time result from repeated
// iterations of one mode. Median rather than mean so a single noisy run
// (GC pause, cold cache) cannot drag the comparison.
func MedianResult(mode string, results []ModeResult) ModeResult {
	if len(results) == 0 {
		return ModeResult{Mode: mode}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].TotalTime < results[j].TotalTime
	})

	median := results[len(results)/2]
	median.Mode = mode
	return median
}

// PrintIterationStats prints spread statistics when a mode ran more than
// once.
func PrintIterationStats(out io.Writer, results []ModeResult) {
	if len(results) <= 1 {
		return
	}

	times := make([]time.Duration, len(results))
	for i, r := range results {
		times[i] = r.TotalTime
	}

	slices.Sort(times)

	mini := times[0]
	maxi := times[len(times)-1]
	median := times[len(times)/2]

	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	mean := sum / time.Duration(len(times))

	var variance float64
	for _, t := range times {
		diff := float64(t - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(times))))

	_, _ = fmt.Fprintf(out, "    Min: %v | Median: %v | Mean: %v | Max: %v | StdDev: %v\n",
		mini.Round(time.Millisecond),
		median.Round(time.Millisecond),
		mean.Round(time.Millisecond),
		maxi.Round(time.Millisecond),
		stddev.Round(time.Millisecond))
}
