package exec

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Backend runs fn(i) for every i in [0, n). Implementations guarantee
// each index is visited exactly once and that ForEach does not return
// until every invocation has completed. fn must be safe to call for
// distinct indices concurrently when the backend is parallel.
type Backend interface {
	ForEach(n int, fn func(i int))
}

// Sequential runs every index on the calling goroutine, in order.
type Sequential struct{}

func (Sequential) ForEach(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// Parallel runs indices across a pool of goroutines using contiguous
// block partitioning, so neighboring indices mostly stay on one worker.
type Parallel struct {
	// Workers is the goroutine count; <= 0 means GOMAXPROCS.
	Workers int
}

func (p Parallel) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
