package srs

import (
	"sync"
	"testing"
)

func TestKeyedLockSerializesSameKey(t *testing.T) {
	locks := NewKeyedLock()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			locks.Lock("user-1:quiz-1")
			counter++
			locks.Unlock("user-1:quiz-1")
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("expected %d serialized increments, got %d", workers, counter)
	}
}

func TestKeyedLockIndependentKeys(t *testing.T) {
	locks := NewKeyedLock()

	locks.Lock("a")
	done := make(chan struct{})
	go func() {
		locks.Lock("b")
		locks.Unlock("b")
		close(done)
	}()
	<-done
	locks.Unlock("a")
}

func TestKeyedLockReleasesEntries(t *testing.T) {
	locks := NewKeyedLock()

	locks.Lock("k")
	locks.Unlock("k")

	locks.mu.Lock()
	remaining := len(locks.locks)
	locks.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected lock table to be empty after release, found %d entries", remaining)
	}
}
