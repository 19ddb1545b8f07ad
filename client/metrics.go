package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signingFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "megam_client",
			Name:      "signing_failures_total",
			Help:      "Requests that could not be signed, usually because credentials are missing.",
		},
	)

	gzipResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "megam_client",
			Name:      "gzip_responses_total",
			Help:      "Responses inflated from Content-Encoding: gzip.",
		},
	)

	awaitPollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "megam_client",
			Name:      "await_polls_total",
			Help:      "GetNode polls issued by AwaitNode, by outcome.",
		},
		[]string{"outcome"},
	)
)
