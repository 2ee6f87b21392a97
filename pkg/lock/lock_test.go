package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	var m Mutex
	m.Lock()
	assert.False(t, m.TryLock())
	m.Unlock()
	assert.True(t, m.TryLock())
	m.Unlock()
}

func TestPushIsReentrant(t *testing.T) {
	var m Mutex

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Push()
		m.Push() // re-entry from the same goroutine must not deadlock
		m.Pop()
		m.Pop()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reentrant Push deadlocked")
	}
}

func TestPushExcludesOtherGoroutines(t *testing.T) {
	var m Mutex
	m.Push()

	acquired := make(chan struct{})
	go func() {
		m.Push()
		close(acquired)
		m.Pop()
	}()

	select {
	case <-acquired:
		t.Fatal("second goroutine acquired the lock while held")
	case <-time.After(50 * time.Millisecond):
	}

	m.Pop()
	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("lock not released after final Pop")
	}
}

func TestPushPopCounting(t *testing.T) {
	var m Mutex
	var counter int

	const goroutines = 8
	const iterations = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				m.Push()
				m.Push()
				counter++
				m.Pop()
				m.Pop()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, goroutines*iterations, counter)
}

func TestCondSignal(t *testing.T) {
	var c Cond
	ready := false

	go func() {
		c.Lock()
		ready = true
		c.Unlock()
		c.Signal()
	}()

	c.Lock()
	for !ready {
		c.Wait()
	}
	c.Unlock()
}

func TestCondTimedWaitTimesOut(t *testing.T) {
	var c Cond

	c.Lock()
	start := time.Now()
	ok := c.TimedWait(0.05)
	c.Unlock()

	require.False(t, ok, "expected timeout")
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

// A zero timeout makes the timer fire while the caller may still be
// between arming it and parking in Wait; every call must still return.
func TestCondTimedWaitZeroTimeoutAlwaysReturns(t *testing.T) {
	const goroutines = 8
	const iterations = 2000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var c Cond
			for i := 0; i < iterations; i++ {
				c.Lock()
				ok := c.TimedWait(0)
				c.Unlock()
				assert.False(t, ok, "zero timeout cannot report a wakeup")
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("a bounded wait never returned")
	}
}

func TestCondTimedWaitSignaled(t *testing.T) {
	var c Cond
	ready := false

	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Lock()
		ready = true
		c.Unlock()
		c.Broadcast()
	}()

	c.Lock()
	ok := true
	for !ready && ok {
		ok = c.TimedWait(2.0)
	}
	c.Unlock()
	assert.True(t, ready, "expected wakeup before timeout")
}
