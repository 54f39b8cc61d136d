package genarena

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelRange calls fn for every live value in a, spreading contiguous slot
// ranges over up to workers goroutines. workers <= 0 uses GOMAXPROCS. The first
// error returned by fn cancels the context passed to the remaining calls and
// is returned.
//
// fn runs concurrently and only has shared access: neither fn nor any other
// goroutine may mutate a until ParallelRange returns.
func ParallelRange[T any](ctx context.Context, a *Arena[T], workers int, fn func(context.Context, Handle, T) error) error {
	if a == nil || len(a.slots) == 0 {
		return nil
	}
	n := len(a.slots)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	span := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += span {
		end := min(start+span, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				s := &a.slots[i]
				if !s.occupied {
					continue
				}
				if err := fn(gctx, MakeHandle(uint32(i), s.generation), s.value); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
