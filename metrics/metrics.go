package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillswap_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillswap_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SwapEvents counts swap lifecycle transitions: created, accepted, rejected, completed.
	SwapEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillswap_swaps_total",
			Help: "Swap request lifecycle events",
		},
		[]string{"event"},
	)

	FeedbackSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillswap_feedback_submitted_total",
			Help: "Feedback entries submitted",
		},
	)
)
