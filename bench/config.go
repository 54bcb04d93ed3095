package bench

import (
	"fmt"
	"io"
)

// Param is one configuration line. Parameters are an ordered slice rather
// than a map so the printed block is stable run to run.
type Param struct {
	Key   string
	Value string
}

// ConfigPrinter prints a comparator's configuration in a standardized
// format, with room for comparator-specific parameters.
type ConfigPrinter struct {
	Title  string
	Tasks  int
	Params []Param
}

// Print outputs the configuration block.
func (cp *ConfigPrinter) Print(out io.Writer) {
	_, _ = Bold.Fprintln(out, fmt.Sprintf("⚙️  %s", cp.Title))
	_, _ = fmt.Fprintf(out, "  Tasks:        %s per execution mode\n", FormatNumber(cp.Tasks))
	for _, p := range cp.Params {
		_, _ = fmt.Fprintf(out, "  %-12s  %s\n", p.Key+":", p.Value)
	}
	_, _ = fmt.Fprintln(out)
}
