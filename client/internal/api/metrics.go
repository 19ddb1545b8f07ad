package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "megam_client",
			Name:      "requests_total",
			Help:      "API calls that received a response, by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "megam_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency including reading the body.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	decodeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "megam_client",
			Name:      "decode_failures_total",
			Help:      "Successful responses whose body could not be decoded.",
		},
		[]string{"reason"},
	)
)
