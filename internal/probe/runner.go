package probe

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
)

// forEach calls fn(worker, i) for every i in [0, n) from workers goroutines.
// Indices are split into contiguous runs, evenly with the remainder spread,
// so each worker owns its slots in any output slice.
func forEach(n, workers int, fn func(worker, i int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	var counter int64
	nextPrint := int64(1)
	if n >= 100 {
		nextPrint = int64(n / 100) // ~1%
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	base, rem, from := n/workers, n%workers, 0
	for w := 0; w < workers; w++ {
		cnt := base
		if w < rem {
			cnt++
		}
		lo, hi := from, from+cnt
		from = hi
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(w, i)
				if Debug {
					done := atomic.AddInt64(&counter, 1)
					if done%nextPrint == 0 {
						fmt.Fprintf(os.Stderr, "[PROGRESS] %.2f%%\n", float64(done)*100/float64(n))
					}
				}
			}
		}()
	}
	wg.Wait()
}
