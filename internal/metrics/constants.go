package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePredictionsSubmitted = "predictions_submitted_total"
	MetricNamePredictionsUpdated   = "predictions_updated_total"
	MetricNameMatchesScored        = "matches_scored_total"
	MetricNamePredictionsScored    = "predictions_scored_total"
	MetricNameScoringFailures      = "scoring_failures_total"
	MetricNamePointsAwarded        = "points_awarded_total"
	MetricNameChampionWagers       = "champion_wagers_total"
	MetricNameChampionPointsPaid   = "champion_points_paid_total"
	MetricNameLeaderboardRecompute = "leaderboard_recompute_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPredictionsSubmitted = "Total number of match predictions submitted"
	HelpTextPredictionsUpdated   = "Total number of match predictions changed before lock"
	HelpTextMatchesScored        = "Total number of scoring runs that processed predictions"
	HelpTextPredictionsScored    = "Total number of predictions scored, by tier"
	HelpTextScoringFailures      = "Total number of predictions or wagers left unscored after a batch"
	HelpTextPointsAwarded        = "Total points credited by match scoring"
	HelpTextChampionWagers       = "Total points wagered on season champions"
	HelpTextChampionPointsPaid   = "Total points paid out to winning champion predictions"
	HelpTextLeaderboardRecompute = "Leaderboard recompute latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTier   = "tier"
	LabelSource = "source"
	LabelScope  = "scope"
)

// Failure sources
const (
	SourceMatch    = "match"
	SourceChampion = "champion"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RecomputeBuckets covers leaderboard rebuilds from 5ms to 30s
var RecomputeBuckets = []float64{.005, .025, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
