// Package metric provides Prometheus-based metrics for the dispatch core.
//
// The package holds one Metrics instance per process (or per test, via
// NewMetricsRegistry) covering the core's hot paths: dispatch outcomes,
// unhandled drops, deferral queue traffic and worker population. None of
// the record methods allocate; they are safe to call from the dispatch
// path.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all core-level metrics (not plugin-specific)
type Metrics struct {
	// Dispatch metrics
	MessagesDispatched *prometheus.CounterVec
	MessagesUnhandled  *prometheus.CounterVec

	// Deferral queue metrics
	QueueEnqueued prometheus.Counter
	QueueDrained  prometheus.Counter
	QueueDropped  prometheus.Counter
	QueueDepth    prometheus.Gauge
	DrainCycles   prometheus.Counter

	// Worker metrics
	WorkersActive prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all core metrics
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flext",
				Subsystem: "dispatch",
				Name:      "messages_total",
				Help:      "Total messages routed through the dispatcher",
			},
			[]string{"class", "status"},
		),

		MessagesUnhandled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "flext",
				Subsystem: "dispatch",
				Name:      "unhandled_total",
				Help:      "Total messages dropped after the unhandled hook declined",
			},
			[]string{"class"},
		),

		QueueEnqueued: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "flext",
				Subsystem: "queue",
				Name:      "enqueued_total",
				Help:      "Total output messages deferred by worker goroutines",
			},
		),

		QueueDrained: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "flext",
				Subsystem: "queue",
				Name:      "drained_total",
				Help:      "Total deferred messages delivered by drain cycles",
			},
		),

		QueueDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "flext",
				Subsystem: "queue",
				Name:      "dropped_total",
				Help:      "Total deferred messages discarded without delivery on teardown",
			},
		),

		QueueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "flext",
				Subsystem: "queue",
				Name:      "depth",
				Help:      "Deferred messages currently pending delivery",
			},
		),

		DrainCycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "flext",
				Subsystem: "queue",
				Name:      "drain_cycles_total",
				Help:      "Total drain cycles run on the host goroutine",
			},
		),

		WorkersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "flext",
				Subsystem: "workers",
				Name:      "active",
				Help:      "Worker goroutines currently running across all instances",
			},
		),
	}
}

// RecordDispatch increments the dispatch counter with an outcome status
// ("handled", "fallback" or "dropped").
func (c *Metrics) RecordDispatch(class, status string) {
	c.MessagesDispatched.WithLabelValues(class, status).Inc()
}

// RecordUnhandled increments the dropped-message counter
func (c *Metrics) RecordUnhandled(class string) {
	c.MessagesUnhandled.WithLabelValues(class).Inc()
}

// RecordEnqueue tracks one deferred output message
func (c *Metrics) RecordEnqueue() {
	c.QueueEnqueued.Inc()
	c.QueueDepth.Inc()
}

// RecordDrain tracks one completed drain cycle delivering n messages
func (c *Metrics) RecordDrain(n int) {
	c.DrainCycles.Inc()
	c.QueueDrained.Add(float64(n))
	c.QueueDepth.Sub(float64(n))
}

// RecordDrop tracks n deferred messages discarded without delivery
func (c *Metrics) RecordDrop(n int) {
	c.QueueDropped.Add(float64(n))
	c.QueueDepth.Sub(float64(n))
}

// RecordWorkerStart tracks a worker goroutine starting
func (c *Metrics) RecordWorkerStart() {
	c.WorkersActive.Inc()
}

// RecordWorkerExit tracks a worker goroutine exiting
func (c *Metrics) RecordWorkerExit() {
	c.WorkersActive.Dec()
}

// collectors returns every collector for registry registration
func (c *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.MessagesDispatched,
		c.MessagesUnhandled,
		c.QueueEnqueued,
		c.QueueDrained,
		c.QueueDropped,
		c.QueueDepth,
		c.DrainCycles,
		c.WorkersActive,
	}
}
