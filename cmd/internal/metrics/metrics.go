package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// ValidationFailures counts rejected fields, one increment per offending field.
	ValidationFailures *prometheus.CounterVec

	// Submissions counts submit attempts by final form state.
	Submissions *prometheus.CounterVec

	// APIDuration tracks round trips to the proposals API.
	APIDuration *prometheus.HistogramVec

	// APIUp is 1 while the proposals API answers probes.
	APIUp prometheus.Gauge
}

// New registers the proposal collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanproposal_validation_failures_total",
				Help: "Number of proposal fields rejected by validation",
			},
			[]string{"field"},
		),
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanproposal_submissions_total",
				Help: "Number of proposal submissions by final state",
			},
			[]string{"state"},
		),
		APIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loanproposal_api_request_duration_seconds",
				Help:    "Duration of requests to the proposals API in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		APIUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "loanproposal_api_up",
				Help: "Whether the proposals API answered the last probe",
			},
		),
	}
}
