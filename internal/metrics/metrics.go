package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
	GoalOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_operations_total",
			Help: "Goal lifecycle operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
	GoalsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "goals_total",
			Help: "Number of goals in the repository",
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			RateLimited,
			GoalOperations,
			GoalsTotal,
		)
	})
}

// Goal operation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNoop     = "noop"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

func ObserveGoalOperation(operation, outcome string) {
	GoalOperations.WithLabelValues(operation, outcome).Inc()
}
