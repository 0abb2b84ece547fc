// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package metrics holds the Prometheus collectors for Devmatch.
//
// Collectors are registered on the default registry through promauto and
// exposed by the API router at /metrics. Callers use the Record* helpers
// rather than touching collectors directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devmatch_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "devmatch_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devmatch_recommendation_duration_seconds",
			Help:    "Time to generate one recommendation list",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"outcome"},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "devmatch_recommendation_candidates",
			Help:    "Number of candidate profiles scored per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "devmatch_recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	DataIntegrityViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "devmatch_data_integrity_violations_total",
			Help: "Profiles found whose owning user could not be resolved",
		},
	)

	// Match Lifecycle Metrics
	MatchOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devmatch_match_operations_total",
			Help: "Match lifecycle operations by type and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devmatch_events_published_total",
			Help: "Domain events handed to the event bus",
		},
		[]string{"type", "outcome"},
	)

	EventBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "devmatch_event_breaker_state",
			Help: "Event publisher circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "devmatch_websocket_connections",
			Help: "Current number of connected WebSocket clients",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "devmatch_websocket_messages_sent_total",
			Help: "Messages delivered to WebSocket clients",
		},
	)

	// Store Metrics
	ActiveProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "devmatch_active_profiles",
			Help: "Number of active match profiles at the last sample",
		},
	)
)

// RecordAPIRequest records a finished API request.
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one Generate call.
func RecordRecommendation(duration time.Duration, candidates, returned int, outcome string) {
	RecommendationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if outcome == "success" {
		RecommendationCandidates.Observe(float64(candidates))
		RecommendationsReturned.Observe(float64(returned))
	}
}

// RecordIntegrityViolation counts an unresolved profile owner.
func RecordIntegrityViolation() {
	DataIntegrityViolations.Inc()
}

// RecordMatchOperation counts a match lifecycle call.
func RecordMatchOperation(operation, outcome string) {
	MatchOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordEventPublished counts an event publish attempt.
func RecordEventPublished(eventType string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	EventsPublished.WithLabelValues(eventType, outcome).Inc()
}

// SetEventBreakerState records the breaker state as 0, 1 or 2.
func SetEventBreakerState(state int) {
	EventBreakerState.Set(float64(state))
}

// SetActiveProfiles records the sampled number of active profiles.
func SetActiveProfiles(n int) {
	ActiveProfiles.Set(float64(n))
}
