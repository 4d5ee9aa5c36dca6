package resilience

import (
	"errors"
	"fmt"
	"sync"
)

// ErrSharedCallPanicked is returned to callers that joined a call which panicked.
var ErrSharedCallPanicked = errors.New("shared call panicked")

// SingleFlight collapses concurrent calls for the same key into one execution.
// Callers that arrive while a call is running wait for it and share its result.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	wg  sync.WaitGroup
	val T
	err error
}

// Do runs fn once per key at a time. shared reports whether the result came
// from a call started by another caller.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call[T]{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	defer func() {
		r := recover()
		if r != nil {
			c.err = fmt.Errorf("%w: key=%s: %v", ErrSharedCallPanicked, key, r)
		}
		c.wg.Done()
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		if r != nil {
			panic(r)
		}
	}()

	c.val, c.err = fn()
	return c.val, c.err, false
}

// InFlight reports whether a call for key is currently running.
func (g *SingleFlight[T]) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.calls[key]
	return ok
}
