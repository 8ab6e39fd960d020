// Package metrics exposes counters for what shoppers do with their carts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Intent outcomes.
const (
	ResultOK      = "ok"
	ResultIgnored = "ignored"
	ResultFailed  = "failed"
)

// CartMetrics counts cart intents by action and outcome. A nil *CartMetrics
// records nothing.
type CartMetrics struct {
	intents      *prometheus.CounterVec
	saveFailures prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	intents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xtreme_cart_intents_total",
		Help: "Cart intents handled, by action and result.",
	}, []string{"action", "result"})
	saveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "xtreme_cart_save_failures_total",
		Help: "Cart writes rejected by the shopper's storage.",
	})
	reg.MustRegister(intents, saveFailures)
	return &CartMetrics{intents: intents, saveFailures: saveFailures}
}

// Intent records one handled intent. A non-nil err marks it failed and counts
// a save failure.
func (m *CartMetrics) Intent(action string, err error) {
	if err != nil {
		m.record(action, ResultFailed)
		if m != nil && m.saveFailures != nil {
			m.saveFailures.Inc()
		}
		return
	}
	m.record(action, ResultOK)
}

// Ignored records an intent that did not touch the cart, e.g. an unknown
// product or a stale row index.
func (m *CartMetrics) Ignored(action string) { m.record(action, ResultIgnored) }

func (m *CartMetrics) record(action, result string) {
	if m == nil || m.intents == nil {
		return
	}
	m.intents.WithLabelValues(normalizeLabel(action), result).Inc()
}

func normalizeLabel(action string) string {
	if action == "" {
		return "unknown"
	}
	return action
}
