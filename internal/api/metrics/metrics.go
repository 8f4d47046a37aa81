// Package metrics defines and registers all custom Prometheus metrics for
// the Atlante Realty site API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at package init; the router
// exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "atlante"

// LeadsCreatedTotal counts accepted lead submissions.
var LeadsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads accepted and stored.",
	},
)

// SubscriptionsCreatedTotal counts accepted newsletter subscriptions.
// Duplicate rejections are not counted here.
var SubscriptionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscriptions_created_total",
		Help:      "Total number of email subscriptions accepted and stored.",
	},
)

// WebhookDeliveriesTotal counts webhook delivery outcomes.
// Labels:
//   - target: logical destination ("crm", "email")
//   - result: "delivered", "rejected" (non-2xx), "error" (transport), "dropped" (queue full)
var WebhookDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_deliveries_total",
		Help:      "Total number of webhook delivery attempts, labelled by target and result.",
	},
	[]string{"target", "result"},
)

// FixtureLoadFailuresTotal counts fixture collections that could not be read
// or parsed. Each failure still serves an empty collection to the caller.
var FixtureLoadFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fixture_load_failures_total",
		Help:      "Total number of failed fixture collection loads, labelled by collection file.",
	},
	[]string{"collection"},
)
