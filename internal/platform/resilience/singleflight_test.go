package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var sharedCount int32
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, shared := g.Do("pipeline:all", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || val != "ok" {
				t.Errorf("singleflight call failed: val=%q err=%v", val, err)
			}
			if shared {
				atomic.AddInt32(&sharedCount, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&sharedCount); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestSingleFlight_InFlightAndPanicCleanup(t *testing.T) {
	var g SingleFlight[int]

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _, _ = g.Do("homeruns", func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	if !g.InFlight("homeruns") {
		t.Fatalf("expected homeruns to be in flight")
	}
	if g.InFlight("pitchers") {
		t.Fatalf("unexpected in-flight key")
	}
	close(release)

	func() {
		defer func() { _ = recover() }()
		_, _, _ = g.Do("boom", func() (int, error) { panic("upstream decoder") })
	}()
	if g.InFlight("boom") {
		t.Fatalf("panicking call must release its key")
	}
}

func TestSingleFlight_JoinedCallersSeePanicAsError(t *testing.T) {
	var g SingleFlight[int]

	started := make(chan struct{})
	release := make(chan struct{})
	ownerPanic := make(chan any, 1)
	go func() {
		defer func() { ownerPanic <- recover() }()
		_, _, _ = g.Do("pipeline:all", func() (int, error) {
			close(started)
			<-release
			panic("decode feed")
		})
	}()
	<-started

	joined := make(chan error, 1)
	go func() {
		val, err, shared := g.Do("pipeline:all", func() (int, error) {
			return 0, errors.New("joiner ran its own call")
		})
		if val != 0 || !shared {
			joined <- errors.New("expected zero shared result")
			return
		}
		joined <- err
	}()

	// Give the second caller time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)

	if r := <-ownerPanic; r != "decode feed" {
		t.Fatalf("expected owner to re-panic, got %v", r)
	}
	if err := <-joined; !errors.Is(err, ErrSharedCallPanicked) {
		t.Fatalf("expected ErrSharedCallPanicked for joined caller, got %v", err)
	}
	if g.InFlight("pipeline:all") {
		t.Fatalf("panicking call must release its key")
	}
}
