// Package workload holds the fixed work functions the comparators measure.
// Both are deliberately boring: the point of the comparison is the execution
// mode, not the work, so the work must be identical and reproducible across
// every mode.
package workload

// SumOfSquares computes the sum of i*i for i in [0, iterations). It is the
// CPU-bound unit of work: deterministic, side-effect free, and heavy enough
// at the default bound (10,000,000 iterations) that scheduling differences
// dominate measurement noise. The specific computation is an arbitrary
// choice; any fixed pure function would support the same conclusions.
func SumOfSquares(iterations int) uint64 {
	var sum uint64
	for i := 0; i < iterations; i++ {
		sum += uint64(i) * uint64(i)
	}
	return sum
}
