package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a validation request.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics provides observability for record validation.
type Metrics struct {
	registry *prometheus.Registry

	// Validation outcomes by record type and outcome
	Validations *prometheus.CounterVec

	// Failures by record type and field
	FieldFailures *prometheus.CounterVec

	// Bind, construct and validate latency by record type
	ValidateLatency *prometheus.HistogramVec
}

// New creates a Metrics instance backed by its own registry, so several
// instances can coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "validated_validations_total",
			Help: "Total validation requests by record type and outcome",
		}, []string{"type", "outcome"}), // outcome: "valid", "invalid", "error"

		FieldFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "validated_field_failures_total",
			Help: "Total failing fields by record type and field name",
		}, []string{"type", "field"}),

		ValidateLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "validated_validate_duration_seconds",
			Help:    "Duration of binding and validating one record",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}, []string{"type"}),
	}
}

// ObserveResult records a completed validation and its failing fields.
func (m *Metrics) ObserveResult(recordType string, failedFields []string, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeValid
	if len(failedFields) > 0 {
		outcome = OutcomeInvalid
	}
	m.Validations.WithLabelValues(recordType, outcome).Inc()
	for _, field := range failedFields {
		m.FieldFailures.WithLabelValues(recordType, field).Inc()
	}
	m.ValidateLatency.WithLabelValues(recordType).Observe(d.Seconds())
}

// ObserveError records a request that failed before validation ran.
// Unknown record types are folded into a single label value to keep
// cardinality bounded.
func (m *Metrics) ObserveError(recordType string, known bool) {
	if m == nil {
		return
	}
	if !known {
		recordType = "unknown"
	}
	m.Validations.WithLabelValues(recordType, OutcomeError).Inc()
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the underlying registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
