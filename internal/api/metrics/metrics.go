// Package metrics defines and registers all custom Prometheus metrics for the
// exercise tracker API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exercise_tracker"

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users successfully created.",
	},
)

// ExercisesLoggedTotal counts successfully persisted exercises.
var ExercisesLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_logged_total",
		Help:      "Total number of exercises successfully logged.",
	},
)

// LogQueriesTotal counts completed exercise-log queries.
var LogQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_queries_total",
		Help:      "Total number of exercise log queries served.",
	},
)

// LogQueryDuration measures how long the store takes to resolve a log query.
var LogQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "log_query_duration_seconds",
		Help:      "Duration of exercise log queries against the store.",
		Buckets:   prometheus.DefBuckets,
	},
)

// UserCacheTotal counts user-cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var UserCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_cache_total",
		Help:      "Total number of user cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
