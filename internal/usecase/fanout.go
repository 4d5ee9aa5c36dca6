package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type fanOutResult[R any] struct {
	value R
	err   error
}

// fanOut runs fn for every item on a bounded pool. Results keep input order.
func fanOut[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]fanOutResult[R], error) {
	results := make([]fanOutResult[R], len(items))
	if len(items) == 0 {
		return results, nil
	}

	workers = normalizeWorkerCount(workers, len(items))
	if workers == 1 {
		for i, item := range items {
			value, err := fn(ctx, item)
			results[i] = fanOutResult[R]{value: value, err: err}
		}
		return results, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, item := range items {
		i, item := i, item
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			value, err := fn(ctx, item)
			results[i] = fanOutResult[R]{value: value, err: err}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	return results, nil
}

func normalizeWorkerCount(requested, tasks int) int {
	if requested < 1 {
		requested = 1
	}
	if tasks > 0 && requested > tasks {
		requested = tasks
	}
	return requested
}
