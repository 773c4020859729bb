package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PredictionsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSubmitted,
			Help: HelpTextPredictionsSubmitted,
		},
	)

	PredictionsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsUpdated,
			Help: HelpTextPredictionsUpdated,
		},
	)

	MatchesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesScored,
			Help: HelpTextMatchesScored,
		},
	)

	PredictionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsScored,
			Help: HelpTextPredictionsScored,
		},
		[]string{LabelTier},
	)

	ScoringFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScoringFailures,
			Help: HelpTextScoringFailures,
		},
		[]string{LabelSource},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	ChampionWagers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChampionWagers,
			Help: HelpTextChampionWagers,
		},
	)

	ChampionPointsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChampionPointsPaid,
			Help: HelpTextChampionPointsPaid,
		},
	)

	LeaderboardRecomputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameLeaderboardRecompute,
			Help:    HelpTextLeaderboardRecompute,
			Buckets: RecomputeBuckets,
		},
		[]string{LabelScope},
	)
)
