package object

import (
	"runtime"
	"time"
)

// StartWorker launches fn on its own goroutine, tracked by the instance.
// The worker is expected to poll ShouldExit and return promptly once it
// reports true; Release blocks until every worker has returned.
func (b *Base) StartWorker(fn func(*Base)) {
	b.state.count.Add(1)
	if b.metrics != nil {
		b.metrics.RecordWorkerStart()
	}
	b.state.group.Go(func() error {
		defer func() {
			b.state.count.Add(-1)
			if b.metrics != nil {
				b.metrics.RecordWorkerExit()
			}
		}()
		fn(b)
		return nil
	})
}

// ShouldExit reports whether teardown has asked workers to wind down.
func (b *Base) ShouldExit() bool { return b.state.exit.Load() }

// Workers returns the number of live workers.
func (b *Base) Workers() int { return int(b.state.count.Load()) }

// ChangePriority is a compatibility shim for hosts whose native plugins
// adjust worker scheduling priority. Goroutines are multiplexed by the
// runtime and carry no OS priority to adjust, so the request always
// reports failure.
func (b *Base) ChangePriority(delta int) bool {
	b.log.Debug("worker priority change not supported")
	return false
}

// Sleep suspends the calling goroutine for the given number of seconds.
func Sleep(seconds float64) {
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// ThrYield offers the scheduler a chance to run another goroutine.
func ThrYield() { runtime.Gosched() }
