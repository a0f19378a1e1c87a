package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRateLimited          = "http_requests_rate_limited_total"
	MetricNameIdentityLookups      = "identity_lookups_total"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameWorkersBought     = "workers_bought_total"
	MetricNameLevelsUpgraded    = "site_levels_upgraded_total"
	MetricNameGathers           = "gathers_total"
	MetricNameResourceGathered  = "resource_gathered_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
	MetricNamePlayersRegistered = "players_registered_total"
	MetricNameBonusesPurchased  = "bonuses_purchased_total"
	MetricNameBonusesGenerated  = "bonuses_generated_total"
	MetricNameSSEClients        = "sse_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRateLimited          = "Total number of requests rejected by the rate limiter"
	HelpTextIdentityLookups      = "Player identity lookups by cache result"
)

const HelpTextEventsPublished = "Total number of events published"

// Business metric help text
const (
	HelpTextWorkersBought     = "Total number of workers bought per site kind"
	HelpTextLevelsUpgraded    = "Total number of site level upgrades per site kind"
	HelpTextGathers           = "Total number of gather actions per site kind"
	HelpTextResourceGathered  = "Total resource amount gathered per site kind"
	HelpTextMoneyEarned       = "Total money earned from selling resources"
	HelpTextMoneySpent        = "Total money spent on workers, levels and bonuses"
	HelpTextPlayersRegistered = "Total number of registered players"
	HelpTextBonusesPurchased  = "Total number of bonuses purchased per kind"
	HelpTextBonusesGenerated  = "Total number of bonuses generated"
	HelpTextSSEClients        = "Current number of connected real-time clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelTarget = "target"
	LabelResult = "result"
)

// Identity lookup results
const (
	ResultCacheHit  = "hit"
	ResultCacheMiss = "miss"
)

// pathUnmatched labels requests that did not match a route
const pathUnmatched = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
