// Package metrics exposes Prometheus instrumentation for calendar updates
// and stats recomputation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalendarUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habit_calendar_updates_total",
		Help: "Calendar day updates by requested action and outcome",
	}, []string{"action", "result"})

	StatsComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "habit_stats_compute_duration_seconds",
		Help:    "Time to load a habit history and compute its stats",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	StatsRefreshHabits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habit_stats_refresh_habits_total",
		Help: "Habits processed by the scheduled stats refresh",
	})

	StatsRefreshErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habit_stats_refresh_errors_total",
		Help: "Habits whose scheduled stats refresh failed",
	})
)
