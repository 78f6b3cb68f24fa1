// Package observability holds the Prometheus collectors shared by both functions.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"

	OutcomeDuplicate = "duplicate"
	OutcomeIgnored   = "ignored"
)

var (
	goalOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goaltrack",
		Subsystem: "goals",
		Name:      "operations_total",
		Help:      "Goal gateway operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	checkoutSessions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goaltrack",
		Subsystem: "checkout",
		Name:      "sessions_total",
		Help:      "Checkout session requests by mode and outcome.",
	}, []string{"mode", "outcome"})

	webhookEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goaltrack",
		Subsystem: "billing",
		Name:      "webhook_events_total",
		Help:      "Payment provider webhook events by type and outcome.",
	}, []string{"type", "outcome"})
)

func init() {
	prometheus.MustRegister(goalOperations, checkoutSessions, webhookEvents)
}

func RecordGoalOperation(operation, outcome string) {
	goalOperations.WithLabelValues(operation, outcome).Inc()
}

func RecordCheckoutSession(mode, outcome string) {
	if mode == "" {
		mode = "unknown"
	}
	checkoutSessions.WithLabelValues(mode, outcome).Inc()
}

func RecordWebhookEvent(eventType, outcome string) {
	webhookEvents.WithLabelValues(eventType, outcome).Inc()
}
