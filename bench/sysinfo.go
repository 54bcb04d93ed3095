package bench

import (
	"fmt"
	"io"
	"runtime"
)

// SystemInfo captures the environment a comparison ran under. The numbers
// only mean something next to the core count and the lock mode, so both are
// recorded alongside the timings.
type SystemInfo struct {
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	NumCPU     int    `json:"num_cpu"`
	MaxProcs   int    `json:"max_procs"`
	GlobalLock bool   `json:"global_lock"`
}

// CollectSystemInfo gathers runtime facts plus the injected lock mode.
func CollectSystemInfo(globalLock bool) SystemInfo {
	return SystemInfo{
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		MaxProcs:   runtime.GOMAXPROCS(0),
		GlobalLock: globalLock,
	}
}

// Print writes the system information block.
func (si SystemInfo) Print(out io.Writer) {
	_, _ = Bold.Fprintln(out, "🖥️  System Information:")
	_, _ = fmt.Fprintf(out, "  Go Version:   %s\n", si.GoVersion)
	_, _ = fmt.Fprintf(out, "  Platform:     %s\n", si.Platform)
	_, _ = fmt.Fprintf(out, "  CPU Cores:    %d (GOMAXPROCS: %d)\n", si.NumCPU, si.MaxProcs)
	lockMode := "absent (workers run in parallel)"
	if si.GlobalLock {
		lockMode = "present (in-process compute serialized)"
	}
	_, _ = fmt.Fprintf(out, "  Global Lock:  %s\n", lockMode)
	_, _ = fmt.Fprintln(out)
}
