// Package metrics registers the Prometheus instruments for the onboarding
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is safe to use everywhere so tests can skip registration.
type Metrics struct {
	CompaniesRegistered   prometheus.Counter
	OnboardingsCompleted  prometheus.Counter
	FormFailures          *prometheus.CounterVec
	RegistryLookupSeconds prometheus.Histogram
}

// New creates and registers all metrics on the default registry. Call once
// per process.
func New() *Metrics {
	return &Metrics{
		CompaniesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dealergate_companies_registered_total",
			Help: "Total number of companies registered",
		}),
		OnboardingsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dealergate_onboardings_completed_total",
			Help: "Total number of completed onboarding transactions",
		}),
		FormFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealergate_form_failures_total",
			Help: "Form failures by taxonomy code",
		}, []string{"code"}),
		RegistryLookupSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dealergate_registry_lookup_seconds",
			Help:    "Latency of CNPJ registry lookups",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncrementRegistered increments the registration counter.
func (m *Metrics) IncrementRegistered() {
	if m != nil {
		m.CompaniesRegistered.Inc()
	}
}

// IncrementOnboarded increments the onboarding counter.
func (m *Metrics) IncrementOnboarded() {
	if m != nil {
		m.OnboardingsCompleted.Inc()
	}
}

// IncrementFailure counts one emitted taxonomy code.
func (m *Metrics) IncrementFailure(code string) {
	if m != nil {
		m.FormFailures.WithLabelValues(code).Inc()
	}
}

// ObserveLookup records one registry lookup duration in seconds.
func (m *Metrics) ObserveLookup(seconds float64) {
	if m != nil {
		m.RegistryLookupSeconds.Observe(seconds)
	}
}
