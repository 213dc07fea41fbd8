// Package metrics defines and registers the custom Prometheus metrics for
// the CRM API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level metrics come from the echoprometheus
// middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// AuthFailuresTotal counts rejected requests at the identity middleware.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the identity middleware.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// NotificationsEmittedTotal counts notifications created by the emitter.
// Label:
//   - event: the task lifecycle event ("created", "updated", "deleted")
var NotificationsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Total number of notifications emitted on task mutations.",
	},
	[]string{"event"},
)

// NotificationEmitFailuresTotal counts emissions that failed. Failures are
// logged and counted but never fail the task mutation that triggered them.
var NotificationEmitFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_emit_failures_total",
		Help:      "Total number of notification emissions that failed after a committed task write.",
	},
)
