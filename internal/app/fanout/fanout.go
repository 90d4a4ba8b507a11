// Package fanout runs one function over a slice of inputs on a fixed pool of
// workers and returns the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for one input. Exactly one of Value or Err is
// meaningful.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most workers goroutines. Results line
// up index-for-index with items.
//
// Items not yet started when ctx is done are not passed to fn; their Result
// carries ctx.Err(). Calls already in flight run to completion, so fn should
// honour ctx itself. A workers value below one is treated as one.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	workers = max(1, min(workers, len(items)))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}
