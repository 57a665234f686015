// Package metrics exposes prometheus instrumentation for the generation
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for generation requests.
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid_request"
	OutcomeForbidden = "forbidden"
	OutcomeFailed    = "generation_failed"
	OutcomeError     = "error"

	// LabelInvalidType is the content_type label recorded for requests
	// carrying a content type outside the recognized set. The raw value
	// is client input and must not become a label.
	LabelInvalidType = "invalid"
)

// Tracker records generation pipeline metrics.
type Tracker struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewTracker creates a tracker and registers its collectors with reg.
func NewTracker(reg prometheus.Registerer) *Tracker {
	t := &Tracker{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_generation_requests_total",
				Help: "Generation requests by content type and outcome.",
			},
			[]string{"content_type", "outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "content_generation_upstream_seconds",
				Help:    "Latency of successful upstream model calls.",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			},
		),
	}

	reg.MustRegister(t.requests, t.duration)
	return t
}

// RecordRequest counts a finished generation request.
func (t *Tracker) RecordRequest(contentType, outcome string) {
	t.requests.WithLabelValues(contentType, outcome).Inc()
}

// RecordUpstreamDuration records the latency of a successful model call.
func (t *Tracker) RecordUpstreamDuration(d time.Duration) {
	t.duration.Observe(d.Seconds())
}
