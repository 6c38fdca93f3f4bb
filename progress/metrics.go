package progress

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsSink decorates another Sink with Prometheus instrumentation:
// a counter of notifications received per tag, and a gauge of the
// last-seen completion ratio per tag. Wrap a LogSink (or Null) with it
// to expose the same round-elimination fan-outs (maximize's pairwise
// scan, coloring's clique search, diagram construction) to a scrape
// endpoint without changing call sites — every opts.Progress.Notify
// already threaded through the algorithms package picks it up for
// free.
type MetricsSink struct {
	next        Sink
	notifyVec   *prometheus.CounterVec
	progressVec *prometheus.GaugeVec
}

// NewMetricsSink registers its collectors against reg (pass
// prometheus.DefaultRegisterer in production, or a fresh
// prometheus.NewRegistry() in tests to avoid collisions across
// parallel test binaries) and wraps next, which receives every
// notification unchanged after metrics are recorded.
func NewMetricsSink(reg prometheus.Registerer, next Sink) *MetricsSink {
	if next == nil {
		next = Null{}
	}
	factory := promauto.With(reg)
	return &MetricsSink{
		next: next,
		notifyVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "round_eliminator",
			Subsystem: "progress",
			Name:      "notifications_total",
			Help:      "Number of progress notifications received, by tag.",
		}, []string{"tag"}),
		progressVec: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "round_eliminator",
			Subsystem: "progress",
			Name:      "ratio",
			Help:      "Last reported current/total ratio, by tag.",
		}, []string{"tag"}),
	}
}

// Notify implements Sink.
func (m *MetricsSink) Notify(tag string, current, total int) {
	m.notifyVec.WithLabelValues(tag).Inc()
	if total > 0 {
		m.progressVec.WithLabelValues(tag).Set(float64(current) / float64(total))
	}
	m.next.Notify(tag, current, total)
}
