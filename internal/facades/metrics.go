package facades

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of HTTP attempts against payment gateways",
		},
		[]string{"gateway", "operation", "outcome"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of single HTTP attempts against payment gateways",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 15},
		},
		[]string{"gateway", "operation"},
	)

	gatewayRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of retried gateway calls",
		},
		[]string{"gateway", "operation"},
	)
)
