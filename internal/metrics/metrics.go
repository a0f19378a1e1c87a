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

// EventsPublished counts every event seen on the bus
var EventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricNameEventsPublished,
		Help: HelpTextEventsPublished,
	},
	[]string{LabelType},
)

// Business Metrics
var (
	WorkersBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkersBought,
			Help: HelpTextWorkersBought,
		},
		[]string{LabelKind},
	)

	LevelsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelsUpgraded,
			Help: HelpTextLevelsUpgraded,
		},
		[]string{LabelKind},
	)

	Gathers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGathers,
			Help: HelpTextGathers,
		},
		[]string{LabelKind},
	)

	ResourceGathered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourceGathered,
			Help: HelpTextResourceGathered,
		},
		[]string{LabelKind},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	PlayersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersRegistered,
			Help: HelpTextPlayersRegistered,
		},
	)

	BonusesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusesPurchased,
			Help: HelpTextBonusesPurchased,
		},
		[]string{LabelKind, LabelTarget},
	)

	BonusesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusesGenerated,
			Help: HelpTextBonusesGenerated,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
	)

	IdentityLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIdentityLookups,
			Help: HelpTextIdentityLookups,
		},
		[]string{LabelResult},
	)
)
