package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReactionToggles counts toggle requests by target kind, direction and result.
	ReactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reaction_toggles_total",
		Help: "Reaction toggle requests by target kind, direction and result.",
	}, []string{"kind", "direction", "result"})

	// RequestDuration observes handler latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route, method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	// RejectedRequests counts requests refused by the auth and CSRF middleware.
	RejectedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rejected_requests_total",
		Help: "Requests rejected before reaching a handler.",
	}, []string{"reason"})
)
