package bench

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONComparisonOutput wraps a comparison's results for machine consumption.
type JSONComparisonOutput struct {
	Comparison string       `json:"comparison"`
	System     SystemInfo   `json:"system"`
	Results    []ModeResult `json:"results"`
}

// PopulateStringFields fills the human-readable duration strings next to
// the nanosecond fields.
func PopulateStringFields(results []ModeResult) {
	for i := range results {
		r := &results[i]
		r.TotalTimeStr = FormatLatency(r.TotalTime)
		r.AvgTaskTimeStr = FormatLatency(r.AvgTaskTime)
	}
}

// SerializeToJSON converts a comparison's results to indented JSON bytes.
func SerializeToJSON(name string, system SystemInfo, results []ModeResult) ([]byte, error) {
	PopulateStringFields(results)

	output := JSONComparisonOutput{
		Comparison: name,
		System:     system,
		Results:    results,
	}

	return json.MarshalIndent(output, "", "  ")
}

// OutputJSON writes the comparison as JSON.
func OutputJSON(out io.Writer, name string, system SystemInfo, results []ModeResult) error {
	data, err := SerializeToJSON(name, system, results)
	if err != nil {
		return fmt.Errorf("serializing comparison to JSON: %w", err)
	}

	_, _ = fmt.Fprintln(out, string(data))
	return nil
}
