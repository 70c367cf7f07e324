package scrapedeck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scrapedeck_client",
			Name:      "requests_total",
			Help:      "API requests issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scrapedeck_client",
			Name:      "request_failures_total",
			Help:      "API requests that returned an error, by endpoint.",
		},
		[]string{"endpoint"},
	)
)
