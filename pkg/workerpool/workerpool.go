// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Run processes items with workerCount goroutines until items is closed or ctx is done.
// A failed item is reported to onError and does not stop the pool.
// Run returns ctx.Err() when it stopped because of cancellation.
func Run[T any](
	ctx context.Context,
	workerCount int,
	items <-chan T,
	process func(context.Context, T) error,
	onError func(T, error),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-items:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil && onError != nil {
						onError(item, err)
					}
				}
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}
