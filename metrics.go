package controller

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcomes, used as metric label values.
const (
	OutcomeBody     = "body"
	OutcomeResponse = "response"
	OutcomeView     = "view"
	OutcomeError    = "error"
)

const missingActionLabel = "<missing>"

// Metrics collects dispatch statistics. A single instance is meant to be shared by all the
// controllers. Nil Metrics is valid and records nothing.
type Metrics struct {
	dispatches   *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	emitFailures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "controller_dispatch_total",
				Help: "Total number of dispatched actions by their outcome",
			},
			[]string{"controller", "action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "controller_dispatch_duration_seconds",
				Help:    "Duration of action dispatches, including the view rendering",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"controller", "action"},
		),
		emitFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "controller_emit_failures_total",
				Help: "Total number of responses that failed to be emitted",
			},
			[]string{"controller"},
		),
	}

	for _, collector := range []prometheus.Collector{m.dispatches, m.duration, m.emitFailures} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(controller, action, outcome string, took time.Duration) {
	if m == nil {
		return
	}

	m.dispatches.WithLabelValues(controller, action, outcome).Inc()
	m.duration.WithLabelValues(controller, action).Observe(took.Seconds())
}

func (m *Metrics) emitFailed(controller string) {
	if m == nil {
		return
	}

	m.emitFailures.WithLabelValues(controller).Inc()
}
