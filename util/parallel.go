package util

import (
	"golang.org/x/sync/errgroup"
)

// ForEachBand splits [0, n) into at most workers contiguous bands and calls fn
// for each band. Bands are disjoint so fn may write to its own index range of
// a shared output without locking. With one worker fn runs on the caller's
// goroutine.
func ForEachBand(n int, workers int, fn func(lo int, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		return fn(0, n)
	}
	if workers > n {
		workers = n
	}

	var g errgroup.Group
	band := CeilDiv(n, workers)
	for lo := 0; lo < n; lo += band {
		lo, hi := lo, min(lo+band, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
