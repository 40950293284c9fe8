// Package metrics defines and registers all custom Prometheus metrics for
// the feedback portal. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// Label values used across counters.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// LoginsTotal counts login attempts that reached the backend.
// Label:
//   - result: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts transparent token refreshes performed by the
// session gate.
// Label:
//   - result: "ok" or "error"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of token refresh attempts, labelled by result.",
	},
	[]string{"result"},
)

// FeedbackOpsTotal counts feedback board operations.
// Labels:
//   - op: "create", "update_status", or "delete"
//   - result: "ok" or "error"
var FeedbackOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_ops_total",
		Help:      "Total number of feedback operations, labelled by op and result.",
	},
	[]string{"op", "result"},
)

// Result maps an error to its counter label value.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
