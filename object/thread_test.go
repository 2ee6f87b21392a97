package object

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipi54/flext/host"
	"github.com/mipi54/flext/metric"
)

func TestWorkerLifecycle(t *testing.T) {
	c := mustRegister(t, nil)
	b := New(c, host.NewRecorder())

	var loops atomic.Int64
	for i := 0; i < 3; i++ {
		b.StartWorker(func(b *Base) {
			for !b.ShouldExit() {
				loops.Add(1)
				Sleep(0.001)
			}
		})
	}
	assert.Equal(t, 3, b.Workers())

	// Let the workers spin at least once each.
	require.Eventually(t, func() bool { return loops.Load() >= 3 },
		time.Second, time.Millisecond)

	// Release raises the exit flag and blocks until every worker is gone.
	b.Release()
	assert.True(t, b.ShouldExit())
	assert.Equal(t, 0, b.Workers())
}

func TestReleaseDropsPendingOutput(t *testing.T) {
	rec := host.NewRecorder()
	c := mustRegister(t, nil)
	m := metric.NewMetrics()
	b := New(c, rec, WithMetrics(m))
	b.AddInAnything(1)
	b.AddOutAnything(1)
	require.True(t, b.SetupInOut())

	b.QueueFloat(0, 1)
	b.QueueFloat(0, 2)
	b.Release()

	// Pending deferred output is discarded, not delivered.
	assert.Equal(t, 0, b.queue.Len())
	rec.RunTicks()
	assert.Empty(t, rec.Emissions())

	// Discards count as drops, not as a delivering drain cycle.
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueueDropped))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.QueueDrained))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DrainCycles))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.QueueDepth))
}

func TestChangePriority(t *testing.T) {
	c := mustRegister(t, nil)
	b := New(c, host.NewRecorder())
	assert.False(t, b.ChangePriority(1))
	assert.False(t, b.ChangePriority(-1))
}

func TestIsSystemThread(t *testing.T) {
	c := mustRegister(t, nil)
	b := New(c, host.NewRecorder())
	assert.True(t, b.IsSystemThread())

	res := make(chan bool, 1)
	go func() { res <- b.IsSystemThread() }()
	assert.False(t, <-res)
}
