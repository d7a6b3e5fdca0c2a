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

// Economy metric names
const (
	MetricNameTickDuration             = "miner_tick_duration_seconds"
	MetricNameMinedTotal               = "miner_mined_total"
	MetricNameBalance                  = "miner_balance"
	MetricNameMiningPower              = "miner_mining_power"
	MetricNameUnitsPurchased           = "miner_units_purchased_total"
	MetricNameUnitsUpgraded            = "miner_units_upgraded_total"
	MetricNameMoneySpent               = "miner_money_spent_total"
	MetricNameTransitionsRejected      = "miner_transitions_rejected_total"
	MetricNameAchievementsUnlocked     = "miner_achievements_unlocked_total"
	MetricNameDownstreamFailures       = "miner_downstream_failures_total"
	MetricNamePersistenceWrites        = "miner_persistence_writes_total"
	MetricNamePersistenceWriteDuration = "miner_persistence_write_duration_seconds"
	MetricNameReferralFetches          = "miner_referral_fetches_total"
	MetricNameRealtimeClients          = "miner_realtime_clients"
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

// Economy metric help text
const (
	HelpTextTickDuration             = "Time spent applying one accrual tick"
	HelpTextMinedTotal               = "Total currency mined by accrual"
	HelpTextBalance                  = "Current spendable balance"
	HelpTextMiningPower              = "Current mining power per second"
	HelpTextUnitsPurchased           = "Total number of units purchased"
	HelpTextUnitsUpgraded            = "Total number of unit upgrades"
	HelpTextMoneySpent               = "Total currency spent on purchases and upgrades"
	HelpTextTransitionsRejected      = "Total number of rejected purchases and upgrades"
	HelpTextAchievementsUnlocked     = "Total number of achievements unlocked"
	HelpTextDownstreamFailures       = "Failures of presentation, persistence and other side effects"
	HelpTextPersistenceWrites        = "Total number of state writes by result"
	HelpTextPersistenceWriteDuration = "State write latency in seconds"
	HelpTextReferralFetches          = "Total number of referral stats fetches by result"
	HelpTextRealtimeClients          = "Currently connected realtime clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelUnit        = "unit"
	LabelOperation   = "operation"
	LabelReason      = "reason"
	LabelAchievement = "achievement"
	LabelStage       = "stage"
	LabelResult      = "result"
	LabelDriver      = "driver"
	LabelTransport   = "transport"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultDropped = "dropped"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers in-memory ticks, which should stay well under a millisecond
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
