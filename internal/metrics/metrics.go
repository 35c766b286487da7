// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linkhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	// LinkClicks counts click events by outcome: recorded, dropped, failed.
	LinkClicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkhub_link_clicks_total",
			Help: "Click events handled by the click recorder",
		},
		[]string{"result"},
	)

	// Reorders counts reorder writes by operation and outcome.
	Reorders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkhub_reorders_total",
			Help: "Reorder operations applied to links and social links",
		},
		[]string{"operation", "result"},
	)
)
