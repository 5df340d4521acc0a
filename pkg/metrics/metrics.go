// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bottlebutler_recommendation_requests_total",
		Help: "Recommendation requests by the strategy that produced the answer",
	}, []string{"strategy"})

	RecommendationsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bottlebutler_recommendations_returned",
		Help:    "Number of recommendations returned per request",
		Buckets: prometheus.LinearBuckets(0, 1, 11),
	})

	ReasoningFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bottlebutler_reasoning_failures_total",
		Help: "Reasoning service failures that triggered the fallback",
	}, []string{"cause"})

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bottlebutler_circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
	}, []string{"name"})

	CircuitBreakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bottlebutler_circuit_breaker_transitions_total",
		Help: "Circuit breaker state transitions",
	}, []string{"name", "from", "to"})

	CatalogRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bottlebutler_catalog_requests_total",
		Help: "Catalog lookups by integration and outcome",
	}, []string{"integration", "outcome"})
)
