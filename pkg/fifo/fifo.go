// Package fifo provides a generic mutex-protected multi-producer FIFO
// with a detach-all drain, the storage behind the deferral queue.
//
// Ordering is by enqueue completion order under the lock, not by producer
// identity: whichever goroutine's Enqueue acquires the lock first is
// delivered first. The queue is unbounded and applies no backpressure; a
// producer that outruns the consumer grows memory without limit, which is
// an accepted property of the deferral design, not a defect of this type.
package fifo

import "github.com/mipi54/flext/pkg/lock"

type node[T any] struct {
	value T
	next  *node[T]
}

// FIFO is an unbounded multi-producer first-in-first-out queue of T.
// The zero FIFO is ready for use.
type FIFO[T any] struct {
	mu    lock.Mutex
	head  *node[T]
	tail  *node[T]
	count int
}

// Enqueue appends a value to the tail and returns the pending count
// including it. A return of 1 marks the empty-to-non-empty transition,
// which is the moment a consumer wake-up is due.
func (f *FIFO[T]) Enqueue(v T) int {
	n := &node[T]{value: v}

	f.mu.Lock()
	if f.tail == nil {
		f.head = n
	} else {
		f.tail.next = n
	}
	f.tail = n
	f.count++
	c := f.count
	f.mu.Unlock()
	return c
}

// Len returns the number of pending values.
func (f *FIFO[T]) Len() int {
	f.mu.Lock()
	n := f.count
	f.mu.Unlock()
	return n
}

// Drain detaches every pending value under the lock, then delivers them
// to fn in strict insertion order outside the lock. Values enqueued while
// fn runs stay queued for the next drain. Returns the number delivered.
func (f *FIFO[T]) Drain(fn func(T)) int {
	f.mu.Lock()
	head := f.head
	n := f.count
	f.head, f.tail, f.count = nil, nil, 0
	f.mu.Unlock()

	for cur := head; cur != nil; cur = cur.next {
		fn(cur.value)
	}
	return n
}
