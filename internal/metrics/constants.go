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

// Business metric names
const (
	MetricNameCalculations       = "rate_calculations_total"
	MetricNameInferenceRuns      = "profile_inference_runs_total"
	MetricNameProfileFetches     = "profile_fetches_total"
	MetricNameCacheLookups       = "cache_lookups_total"
	MetricNameSelectionsRejected = "boost_selections_rejected_total"
	MetricNameSessionsCreated    = "sessions_created_total"
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

// Business metric help text
const (
	HelpTextCalculations       = "Total number of rate calculations"
	HelpTextInferenceRuns      = "Total number of profile to boost inference runs"
	HelpTextProfileFetches     = "Total number of player profile fetches from the game API"
	HelpTextCacheLookups       = "Total number of cache lookups"
	HelpTextSelectionsRejected = "Total number of boost selection edits rejected by an invariant"
	HelpTextSessionsCreated    = "Total number of calculator sessions created"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelActivity = "activity"
	LabelResult   = "result"
	LabelCache    = "cache"
)

// ============================================================================
// Label Values
// ============================================================================

// Result label values
const (
	ResultSuccess   = "success"
	ResultNotFound  = "not_found"
	ResultMalformed = "malformed"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

// Cache label values
const (
	CacheProfiles = "profiles"
	CacheSessions = "sessions"
	CacheHit      = "hit"
	CacheMiss     = "miss"
)

// UnmatchedRoute labels requests that did not match any route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
