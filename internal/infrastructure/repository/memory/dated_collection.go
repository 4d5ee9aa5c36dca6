package memory

import "sync"

// datedCollection holds one collection's rows partitioned by reporting date.
type datedCollection[T any] struct {
	mu     sync.RWMutex
	byDate map[string][]T
}

func newDatedCollection[T any]() *datedCollection[T] {
	return &datedCollection[T]{byDate: make(map[string][]T)}
}

func (c *datedCollection[T]) list(date string) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := c.byDate[date]
	out := make([]T, 0, len(items))
	out = append(out, items...)
	return out
}

func (c *datedCollection[T]) replace(date string, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(items) == 0 {
		delete(c.byDate, date)
		return
	}
	stored := make([]T, len(items))
	copy(stored, items)
	c.byDate[date] = stored
}

func (c *datedCollection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, items := range c.byDate {
		total += len(items)
	}
	return total
}
