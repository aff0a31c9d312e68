// Package parallel runs index-addressed work on a bounded set of goroutines.
// Callers write results into per-index slots, so no locking is needed.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Workers returns n if positive, otherwise GOMAXPROCS.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// For calls fn(i) for every i in [0, n) using up to workers goroutines and
// returns once all calls have finished. Indices are handed out in chunks.
func For(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers = min(Workers(workers), n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := max(1, n/(workers*4))
	var next atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				end := int(next.Add(int64(chunk)))
				start := end - chunk
				if start >= n {
					return
				}
				for i := start; i < min(end, n); i++ {
					fn(i)
				}
			}
		}()
	}

	wg.Wait()
}
