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

// Business Metrics
var (
	MealsPlanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMealsPlanned,
			Help: HelpTextMealsPlanned,
		},
		[]string{LabelMealType},
	)

	MealSlotsConflict = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMealSlotsConflict,
			Help: HelpTextMealSlotsConflict,
		},
	)

	MealSlotsUnfilled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMealSlotsUnfilled,
			Help: HelpTextMealSlotsUnfilled,
		},
		[]string{LabelCode},
	)

	DaysScaled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysScaled,
			Help: HelpTextDaysScaled,
		},
	)

	SwapsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSwapsAccepted,
			Help: HelpTextSwapsAccepted,
		},
	)

	SwapsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSwapsRejected,
			Help: HelpTextSwapsRejected,
		},
		[]string{LabelReason},
	)
)
