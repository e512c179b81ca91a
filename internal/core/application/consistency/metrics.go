package consistency

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "galapagos"
	subsystem = "consistency"

	outcomeCommitted = "committed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeDegraded  = "degraded"
)

// Metrics counts plan outcomes, failed secondary writes and the repairs made
// by reconciliation.
type Metrics struct {
	plans             *prometheus.CounterVec
	secondaryFailures *prometheus.CounterVec
	counterRepairs    prometheus.Counter
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		plans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plans_total",
				Help:      "Total number of cross-store plans by outcome",
			},
			[]string{"operation", "outcome"},
		),
		secondaryFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "secondary_failures_total",
				Help:      "Total number of secondary writes that failed after their primary committed",
			},
			[]string{"operation", "step"},
		),
		counterRepairs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "counter_repairs_total",
				Help:      "Total number of port locker counters rewritten by reconciliation",
			},
		),
	}

	reg.MustRegister(m.plans, m.secondaryFailures, m.counterRepairs)
	return m
}

// SecondaryFailures exposes the failure counter for the given labels.
func (m *Metrics) SecondaryFailures(operation, step string) prometheus.Counter {
	return m.secondaryFailures.WithLabelValues(operation, step)
}

// Plans exposes the outcome counter for the given labels.
func (m *Metrics) Plans(operation, outcome string) prometheus.Counter {
	return m.plans.WithLabelValues(operation, outcome)
}

// CounterRepairs exposes the reconciliation repair counter.
func (m *Metrics) CounterRepairs() prometheus.Counter {
	return m.counterRepairs
}
