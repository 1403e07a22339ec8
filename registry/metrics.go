package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const subsystem = "registry"

// Outcome label values.
const (
	outcomePass = "pass"
	outcomeFail = "fail"
)

type metrics struct {
	// checks counts checked entries by outcome (pass, fail).
	checks *prometheus.CounterVec
	// runDuration measures one RunAll pass.
	runDuration prometheus.Histogram
	// entries tracks the current registry size.
	entries prometheus.Gauge
}

// newMetrics builds the collectors. A nil registerer leaves them
// unregistered, which promauto.With supports.
func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checks_total",
			Help:      "Registered entries checked, by outcome",
		}, []string{"outcome"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Duration of a full RunAll pass",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
		entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "entries",
			Help:      "Number of registered entries",
		}),
	}
}

func (m *metrics) record(passed bool) {
	if passed {
		m.checks.WithLabelValues(outcomePass).Inc()
		return
	}
	m.checks.WithLabelValues(outcomeFail).Inc()
}
