// Package metrics exports quotation metrics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "freight"

// QuoteMetrics implements ports.QuoteMetrics with a counter of quotes by
// strategy and carrier and a histogram of final freight values.
type QuoteMetrics struct {
	quotes       *prometheus.CounterVec
	freightValue *prometheus.HistogramVec
}

// NewQuoteMetrics creates the collectors and registers them with reg.
// It returns an error when a collector with the same name is already
// registered.
func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	m := &QuoteMetrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Number of completed quotations.",
		}, []string{"strategy", "carrier"}),
		freightValue: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_freight_value_brl",
			Help:      "Final freight value of completed quotations, in BRL.",
			Buckets:   []float64{10, 25, 50, 100, 200, 400, 800, 1600},
		}, []string{"carrier"}),
	}

	for _, c := range []prometheus.Collector{m.quotes, m.freightValue} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *QuoteMetrics) ObserveQuote(strategy, carrier string, freightValue float64) {
	m.quotes.WithLabelValues(strategy, carrier).Inc()
	m.freightValue.WithLabelValues(carrier).Observe(freightValue)
}
