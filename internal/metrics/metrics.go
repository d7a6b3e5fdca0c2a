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

// Economy Metrics
var (
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	MinedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMinedTotal,
			Help: HelpTextMinedTotal,
		},
	)

	Balance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBalance,
			Help: HelpTextBalance,
		},
	)

	MiningPower = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMiningPower,
			Help: HelpTextMiningPower,
		},
	)

	UnitsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnitsPurchased,
			Help: HelpTextUnitsPurchased,
		},
		[]string{LabelUnit},
	)

	UnitsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnitsUpgraded,
			Help: HelpTextUnitsUpgraded,
		},
		[]string{LabelUnit},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	TransitionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransitionsRejected,
			Help: HelpTextTransitionsRejected,
		},
		[]string{LabelOperation, LabelReason},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	DownstreamFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDownstreamFailures,
			Help: HelpTextDownstreamFailures,
		},
		[]string{LabelStage},
	)
)

// Infrastructure Metrics
var (
	PersistenceWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceWrites,
			Help: HelpTextPersistenceWrites,
		},
		[]string{LabelDriver, LabelResult},
	)

	PersistenceWriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePersistenceWriteDuration,
			Help:    HelpTextPersistenceWriteDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelDriver},
	)

	ReferralFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferralFetches,
			Help: HelpTextReferralFetches,
		},
		[]string{LabelResult},
	)

	RealtimeClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameRealtimeClients,
			Help: HelpTextRealtimeClients,
		},
		[]string{LabelTransport},
	)
)
