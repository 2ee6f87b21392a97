// Package lock provides the synchronization primitives underlying the
// deferral queue: a mutex with an additional reentrant counting mode, and
// a condition variable with a float-seconds bounded wait.
//
// The plain Lock/Unlock pair guards short critical sections (the queue's
// own bookkeeping). The Push/Pop pair is the reentrant mode: a goroutine
// already holding the lock may re-enter a critical section (for example a
// handler invoked while already inside dispatch) without deadlocking.
// The two modes share one underlying mutex, so Push excludes Lock holders
// and vice versa.
package lock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/mipi54/flext/pkg/goid"
)

// Mutex is a mutual exclusion lock with a reentrant counting mode.
// The zero Mutex is ready for use.
type Mutex struct {
	mu    sync.Mutex
	owner atomic.Int64 // goroutine holding via Push, 0 otherwise
	depth int
}

// Lock acquires the mutex. Not reentrant; pair with Unlock.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex acquired by Lock.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// TryLock attempts to acquire the mutex without waiting.
func (m *Mutex) TryLock() bool { return m.mu.TryLock() }

// Push acquires the mutex reentrantly: if the calling goroutine already
// holds it via Push, only the hold count is increased.
func (m *Mutex) Push() {
	gid := goid.Get()
	if m.owner.Load() == gid {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.depth = 1
}

// Pop releases one Push hold, unlocking the mutex when the count reaches
// zero.
func (m *Mutex) Pop() {
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

// Cond is a condition variable bound to an embedded Mutex. Waiters must
// hold the mutex via Lock; wakeups may be spurious, so waiters re-check
// their predicate.
type Cond struct {
	Mutex
	cond *sync.Cond
	once sync.Once
}

func (c *Cond) init() {
	c.once.Do(func() { c.cond = sync.NewCond(&c.mu) })
}

// Wait atomically releases the mutex and suspends the calling goroutine
// until Signal or Broadcast.
func (c *Cond) Wait() {
	c.init()
	c.cond.Wait()
}

// TimedWait waits at most the given number of seconds. It returns false
// if the timeout elapsed before a wakeup. Wakeups may be spurious.
func (c *Cond) TimedWait(seconds float64) bool {
	c.init()

	var timedOut atomic.Bool
	timer := time.AfterFunc(time.Duration(seconds*float64(time.Second)), func() {
		timedOut.Store(true)
		// The caller holds the mutex until Wait below parks it, so
		// acquiring it here means the waiter is registered before the
		// broadcast; broadcasting any earlier could be lost.
		c.mu.Lock()
		c.mu.Unlock()
		c.cond.Broadcast()
	})
	c.cond.Wait()
	timer.Stop()
	return !timedOut.Load()
}

// Signal wakes one waiting goroutine, if any.
func (c *Cond) Signal() {
	c.init()
	c.cond.Signal()
}

// Broadcast wakes all waiting goroutines.
func (c *Cond) Broadcast() {
	c.init()
	c.cond.Broadcast()
}
