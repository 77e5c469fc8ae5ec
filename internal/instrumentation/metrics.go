// Package instrumentation exposes Prometheus metrics for the store service.
package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the OHLC store service.
type Metrics struct {
	StoresTotal    *prometheus.CounterVec
	RetrievesTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the service metrics on the given
// registerer. Pass prometheus.DefaultRegisterer in production.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		StoresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ohlc_stores_total",
			Help: "Total number of SendOHLC requests by outcome",
		}, []string{"outcome"}),

		RetrievesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ohlc_retrieves_total",
			Help: "Total number of GetOHLC requests by outcome",
		}, []string{"outcome"}),
	}
}

// RecordStore counts one SendOHLC request with the given outcome
// ("ok", "invalid", "storage_error").
func (m *Metrics) RecordStore(outcome string) {
	m.StoresTotal.WithLabelValues(outcome).Inc()
}

// RecordRetrieve counts one GetOHLC request with the given outcome
// ("ok", "invalid", "not_found", "data_loss", "storage_error").
func (m *Metrics) RecordRetrieve(outcome string) {
	m.RetrievesTotal.WithLabelValues(outcome).Inc()
}
