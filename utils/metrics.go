package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Task Metrics
	TaskCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_completions_total",
			Help: "Total number of tasks marked complete",
		},
		[]string{"user_id"},
	)

	// Coaching Metrics
	CoachingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_requests_total",
			Help: "Total number of coaching message generations",
		},
		[]string{"status"}, // success, failure, disabled
	)

	// Outbox Metrics
	OutboxEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_total",
			Help: "Total number of outbox events by stage",
		},
		[]string{"stage"}, // published, publish_failed, dispatched, dispatch_failed
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type and cause",
		},
		[]string{"type", "cause"}, // db/validation/... , short cause label
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackError increments the error counter by type and cause
func TrackError(errorType, cause string) {
	ErrorsTotal.WithLabelValues(errorType, cause).Inc()
}

// TrackTaskCompletion records a task completion for a user
func TrackTaskCompletion(userID string) {
	TaskCompletionsTotal.WithLabelValues(userID).Inc()
}

// TrackCoachingRequest records the outcome of a coaching generation
func TrackCoachingRequest(status string) {
	CoachingRequestsTotal.WithLabelValues(status).Inc()
}

// TrackOutboxEvent records an outbox event stage transition
func TrackOutboxEvent(stage string) {
	OutboxEventsTotal.WithLabelValues(stage).Inc()
}
