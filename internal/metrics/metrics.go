// Package metrics defines the Prometheus instrumentation for imobdesk.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by method and status class.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imob_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	}, []string{"method", "status"})

	// RequestDuration observes HTTP request latency.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "imob_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	})

	// VisitsScheduled counts visits created through the scheduler.
	VisitsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imob_visits_scheduled_total",
		Help: "Visits scheduled since process start.",
	})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
