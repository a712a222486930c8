package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for identifier validation.
type Metrics struct {
	ValidationsTotal *prometheus.CounterVec
}

// New creates and registers all validation metrics.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idnum_validations_total",
			Help: "Total number of identifier validations by country, class and outcome",
		}, []string{"country", "class", "outcome"}),
	}
}

// ObserveValidation records one validation outcome.
func (m *Metrics) ObserveValidation(country, class, outcome string) {
	m.ValidationsTotal.WithLabelValues(country, class, outcome).Inc()
}
