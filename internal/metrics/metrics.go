// Package metrics registers the prometheus collectors served by the monitoring server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "line_bot"

var (
	// WebhookRequests counts webhook deliveries by outcome.
	WebhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_requests_total",
		Help:      "Webhook deliveries received, by outcome.",
	}, []string{"outcome"})

	// Events counts dispatched events by type.
	Events = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Events processed from webhook deliveries, by type.",
	}, []string{"type"})

	// ActionFailures counts failed side effects by action.
	ActionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_failures_total",
		Help:      "Failed outbound calls or storage writes while dispatching events, by action.",
	}, []string{"action"})
)
