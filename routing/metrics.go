package routing

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query results used as the "result" label.
const (
	resultOK          = "ok"
	resultUnknownNode = "unknown_node"
	resultNoPath      = "no_path"
	resultError       = "error"
)

type metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics creates the collectors and registers them on reg when non-nil.
// A Registerer can back only one Service.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oopsiroute_queries_total",
			Help: "Total graph queries by operation and result",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oopsiroute_query_duration_seconds",
			Help:    "Graph query duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"op"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.queries, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("routing: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *metrics) observe(op, result string, start time.Time) {
	m.queries.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
