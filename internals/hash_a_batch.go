package internals

import (
	"runtime"
	"sync"
)

// This module implements batch hashing. The host pipeline hands over a set
// of filepaths; concurrent units evaluate file content:
//
// (1) filepaths are distributed over a bounded set of workers
// (2) each worker computes the selected digests with its own accumulators
//     and its own byte source ⇒ FileResult
// (3) one FileResult per filepath is emitted, failures included

// FileResult contains the outcome of one file's digest computation
type FileResult struct {
	Path      string
	Digests   map[HashAlgo]string
	BytesRead uint64
	Err       error
}

// FileDigests returns the FileDigests view of this result.
func (r FileResult) FileDigests() FileDigests {
	return FileDigests{Digests: r.Digests, BytesRead: r.BytesRead}
}

// HashABatch computes the selected digests for every given filepath using
// the given number of workers (non-positive means number of logical CPUs).
// The Selection is shared read-only among all workers. A failed file is
// reported through FileResult.Err and does not stop the remaining files;
// the host pipeline decides batch policy. out is closed once all results
// have been emitted. Result order is unspecified.
func HashABatch(sel Selection, paths []string, workers int, out chan<- FileResult) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	queue := make(chan string)
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range queue {
				digests, err := ComputeFileDigests(sel, path)
				out <- FileResult{
					Path:      path,
					Digests:   digests.Digests,
					BytesRead: digests.BytesRead,
					Err:       err,
				}
			}
		}()
	}

	go func() {
		for _, path := range paths {
			queue <- path
		}
		close(queue)
		wg.Wait()
		close(out)
	}()
}
