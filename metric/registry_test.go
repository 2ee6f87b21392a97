package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistryRegistersCore(t *testing.T) {
	r := NewMetricsRegistry()
	require.NotNil(t, r.CoreMetrics())

	// Core collectors must be gatherable without error.
	_, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)
}

func TestRegisterCollectorDuplicate(t *testing.T) {
	r := NewMetricsRegistry()

	c1 := prometheus.NewCounter(prometheus.CounterOpts{Name: "demo_total", Help: "demo"})
	require.NoError(t, r.RegisterCollector("counter~", "demo", c1))

	c2 := prometheus.NewCounter(prometheus.CounterOpts{Name: "demo2_total", Help: "demo"})
	err := r.RegisterCollector("counter~", "demo", c2)
	assert.Error(t, err, "duplicate key rejected")

	assert.True(t, r.Unregister("counter~", "demo"))
	assert.False(t, r.Unregister("counter~", "demo"))
}

func TestQueueAccounting(t *testing.T) {
	m := NewMetrics()

	m.RecordEnqueue()
	m.RecordEnqueue()
	m.RecordEnqueue()
	assert.Equal(t, 3.0, testutil.ToFloat64(m.QueueDepth))

	m.RecordDrain(3)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.QueueDepth))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.QueueDrained))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DrainCycles))
}

func TestQueueDropAccounting(t *testing.T) {
	m := NewMetrics()

	m.RecordEnqueue()
	m.RecordEnqueue()
	m.RecordDrop(2)

	// Discarded messages leave the drain counters untouched.
	assert.Equal(t, 0.0, testutil.ToFloat64(m.QueueDepth))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueueDropped))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.QueueDrained))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DrainCycles))
}

func TestWorkerGauge(t *testing.T) {
	m := NewMetrics()
	m.RecordWorkerStart()
	m.RecordWorkerStart()
	m.RecordWorkerExit()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WorkersActive))
}

func TestDispatchCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordDispatch("counter~", "handled")
	m.RecordDispatch("counter~", "handled")
	m.RecordDispatch("counter~", "dropped")
	m.RecordUnhandled("counter~")

	assert.Equal(t, 2.0,
		testutil.ToFloat64(m.MessagesDispatched.WithLabelValues("counter~", "handled")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(m.MessagesUnhandled.WithLabelValues("counter~")))
}
