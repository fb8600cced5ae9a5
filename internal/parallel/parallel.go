// Package parallel splits independent index ranges across goroutines.
//
// It is used to sample decision-boundary heatmaps row by row when the
// sampled function is safe for concurrent reads.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
//
// The zero value runs everything sequentially on the calling goroutine.
type Config struct {
	Workers      int // Goroutines to use; <= 1 means sequential.
	MinChunkSize int // Minimum indices per goroutine.
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinChunkSize: 8,
	}
}

// WithWorkers returns a config using n workers.
//
// n <= 0 selects one worker per CPU.
func WithWorkers(n int) Config {
	cfg := DefaultConfig()
	if n > 0 {
		cfg.Workers = n
	}
	return cfg
}

// Sequential reports whether For would run on the calling goroutine for n items.
func (c Config) Sequential(n int) bool {
	return c.Workers <= 1 || n <= max(c.MinChunkSize, 1)
}

// For executes f(i) for i in [0, n).
//
// Every index is visited exactly once. Indices are split into contiguous
// chunks, one goroutine per chunk; For returns after all of them finish.
func For(n int, f func(i int), cfg Config) {
	if cfg.Sequential(n) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForGrid executes f(r, c) for every cell of a rows×cols grid.
//
// Work is split by row so each goroutine writes whole rows.
func ForGrid(rows, cols int, f func(r, c int), cfg Config) {
	For(rows, func(r int) {
		for c := 0; c < cols; c++ {
			f(r, c)
		}
	}, cfg)
}
