package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameMealsPlanned      = "meals_planned_total"
	MetricNameMealSlotsConflict = "meal_slot_conflicts_total"
	MetricNameMealSlotsUnfilled = "meal_slots_unfilled_total"
	MetricNameDaysScaled        = "plan_days_scaled_total"
	MetricNameSwapsAccepted     = "meal_swaps_accepted_total"
	MetricNameSwapsRejected     = "meal_swaps_rejected_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextMealsPlanned      = "Total number of planned meals persisted"
	HelpTextMealSlotsConflict = "Total number of meal slots that already existed during generation"
	HelpTextMealSlotsUnfilled = "Total number of meal slots left unfilled by generation"
	HelpTextDaysScaled        = "Total number of day plans that required portion scaling"
	HelpTextSwapsAccepted     = "Total number of accepted meal swaps"
	HelpTextSwapsRejected     = "Total number of rejected meal swaps"
)

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelMealType = "meal_type"
	LabelCode     = "code"
	LabelReason   = "reason"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
