// Package fanout runs independent fetches concurrently and joins them.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work started by Join.
type Task func(ctx context.Context) error

// Join starts every task at once and waits for all of them. The first error
// cancels the context shared by the remaining tasks and is returned; callers
// must then discard any partial results.
func Join(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error {
			return task(gctx)
		})
	}
	return g.Wait()
}

// Fetch adapts a typed fetch into a Task that stores its result in dst.
func Fetch[T any](dst *T, fn func(ctx context.Context) (T, error)) Task {
	return func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
