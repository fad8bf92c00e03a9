package util

import "runtime"

// OptimalPoolSize returns the worker count used for CPU-bound parallel work
// (parser pools, per-file extraction workers).
//
// Formula: min(max(runtime.NumCPU() * 2, 4), 32)
//
// The 2x factor keeps cores busy while goroutines sit in CGO parse calls;
// the floor guarantees some parallelism on small machines and the cap bounds
// parser memory on large ones.
func OptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// PoolSizeWithOverride returns override when positive, otherwise the
// CPU-derived default. Backs the generator's worker-count setting.
func PoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return OptimalPoolSize()
}
