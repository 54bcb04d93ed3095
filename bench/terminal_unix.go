//go:build !windows

package bench

// EnableANSI is a no-op on Unix systems; their terminals handle ANSI escape
// sequences natively.
func EnableANSI() {}
