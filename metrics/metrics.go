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

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
	)
)

// Finance Metrics
var (
	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotesComputed,
			Help: HelpTextQuotesComputed,
		},
		[]string{LabelTerm},
	)

	QuoteCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuoteCacheLookups,
			Help: HelpTextQuoteCacheLookups,
		},
		[]string{LabelResult},
	)

	VehicleQuotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVehicleQuotes,
			Help: HelpTextVehicleQuotes,
		},
		[]string{LabelMake},
	)
)

// Inventory Metrics
var (
	InventorySearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventorySearches,
			Help: HelpTextInventorySearches,
		},
	)
)
