package serial

import (
	"sync"
	"testing"
)

func TestCounterNext(t *testing.T) {
	c := NewCounter(10)
	if got := c.Next(); got != 11 {
		t.Errorf("Next() = %d, want 11", got)
	}
	if got := c.Next(); got != 12 {
		t.Errorf("Next() = %d, want 12", got)
	}
}

func TestCounterZeroValue(t *testing.T) {
	var c Counter
	if got := c.Next(); got != 1 {
		t.Errorf("Next() = %d, want 1", got)
	}
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter(0)
	const workers, perWorker = 8, 1000

	var mu sync.Mutex
	seen := make(map[uint64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, c.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*perWorker)
	}
}

func TestDefaultIsShared(t *testing.T) {
	a := Default().Next()
	b := Default().Next()
	if b <= a {
		t.Errorf("Default ids not increasing: %d then %d", a, b)
	}
}
