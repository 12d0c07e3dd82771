package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Interaction scoring metrics
var (
	// InteractionEventsTotal tracks processed interaction events by action kind and matched rule.
	InteractionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_events_total",
			Help: "Total interaction events processed by action kind and matched rule",
		},
		[]string{"action", "rule"},
	)

	// InteractionPointsTotal tracks the sum of base points awarded by action kind.
	InteractionPointsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_points_total",
			Help: "Total base points awarded by action kind",
		},
		[]string{"action"},
	)
)

// Score computation metrics
var (
	// ScoreComputeDuration tracks full content score recomputations in seconds.
	ScoreComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "score_compute_duration_seconds",
			Help:    "Content score recomputation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// ScoresRecomputedTotal tracks content score recomputations by outcome.
	ScoresRecomputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scores_recomputed_total",
			Help: "Total content score recomputations by status",
		},
		[]string{"status"},
	)

	// UserScoresRefreshedTotal tracks rolling user score refreshes.
	UserScoresRefreshedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_scores_refreshed_total",
			Help: "Total rolling user score refreshes",
		},
	)

	// DirtyContents tracks contents awaiting recomputation on the next tick.
	DirtyContents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "score_dirty_contents",
			Help: "Contents marked dirty and awaiting score recomputation",
		},
	)
)

// Storage metrics
var (
	// CounterOpsTotal tracks counter store operations by operation and status.
	CounterOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "counter_store_operations_total",
			Help: "Total counter store operations by operation and status",
		},
		[]string{"operation", "status"},
	)
)

// WebSocket metrics
var (
	// WebSocketClientsCurrent tracks currently connected live score subscribers.
	WebSocketClientsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_clients_current",
			Help: "Currently connected live score subscribers",
		},
	)

	// WebSocketSlowClientsEvicted tracks subscribers dropped for slow consumption.
	WebSocketSlowClientsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_slow_clients_evicted_total",
			Help: "Subscribers evicted because their send buffer was full",
		},
	)
)
