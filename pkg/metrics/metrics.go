// Package metrics declares the Prometheus collectors shared by the application
// and helpers to instrument outgoing HTTP traffic with them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Upstream (media server) metrics
//
//nolint: gochecknoglobals
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jellyfront_upstream_requests_total",
			Help: "Total number of requests sent to the media server",
		},
		[]string{"code", "method"},
	)

	UpstreamRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jellyfront_upstream_requests_in_flight",
			Help: "Number of requests to the media server currently in flight",
		},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jellyfront_upstream_request_duration_seconds",
			Help:    "Duration of media server API calls in seconds, by endpoint",
			Buckets: DefaultBuckets,
		},
		[]string{"endpoint"},
	)
)

// InstrumentTransport wraps next so every round trip is counted and tracked
// as in flight. A nil next uses http.DefaultTransport.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return promhttp.InstrumentRoundTripperInFlight(UpstreamRequestsInFlight,
		promhttp.InstrumentRoundTripperCounter(UpstreamRequestsTotal, next))
}
