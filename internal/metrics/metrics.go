// Package metrics holds the Prometheus collectors shared by handlers and services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinnamon_http_requests_total",
		Help: "HTTP requests by route pattern, method and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cinnamon_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and method",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	HighlightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cinnamon_highlight_duration_seconds",
		Help:    "Time spent rendering snippet HTML",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"language"})

	HighlightFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinnamon_highlight_failures_total",
		Help: "Snippet saves aborted because rendering failed",
	})

	DocumentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinnamon_document_writes_total",
		Help: "Health document writes by collection and operation",
	}, []string{"collection", "op"})
)
