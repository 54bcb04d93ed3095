package bench

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// SetupProfiling starts CPU profiling and arranges a heap snapshot,
// returning the cleanup function the caller must defer. Empty paths disable
// the corresponding profile.
func SetupProfiling(cpuProfile, memProfile string) (func(), error) {
	cleanups := make([]func(), 0, 2)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return nil, fmt.Errorf("creating CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("starting CPU profile: %w", err)
		}
		fmt.Printf("CPU profiling enabled, writing to: %s\n", cpuProfile)

		cleanups = append(cleanups, func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}

	if memProfile != "" {
		cleanups = append(cleanups, func() {
			f, err := os.Create(memProfile)
			if err != nil {
				colorPrintf(Red, "Error creating memory profile: %v\n", err)
				return
			}
			defer func() { _ = f.Close() }()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				colorPrintf(Red, "Error writing memory profile: %v\n", err)
				return
			}
			fmt.Printf("Memory profile written to: %s\n", memProfile)
		})
	}

	return func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}, nil
}
