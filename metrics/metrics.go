package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the counters below
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
	OutcomeRefused  = "refused"
	OutcomeNoop     = "noop"

	OutcomeDelivered    = "delivered"
	OutcomeNotDelivered = "not_delivered"
)

var (
	// Subscription state machine
	SubscriptionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_transitions_total",
			Help: "Subscription state transitions by action and outcome",
		},
		[]string{"action", "outcome"}, // request|approve|reject|grant|revoke|undo
	)

	// Notification channels
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_notifications_total",
			Help: "Subscription notifications by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	ActionLogAppendFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "action_log_append_failures_total",
			Help: "Admin action journal records that could not be written",
		},
	)

	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	initOnce sync.Once
)

// Handler serves the /metrics endpoint
var Handler = promhttp.Handler

// Init registers all collectors with the default registry
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(SubscriptionTransitions)
		prometheus.MustRegister(Notifications)
		prometheus.MustRegister(ActionLogAppendFailures)
		prometheus.MustRegister(HTTPLatency)
	})
}
