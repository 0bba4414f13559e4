// Package metrics defines and registers all custom Prometheus metrics for the
// backoffice auth API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register via promauto; request-level
// metrics come from the echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success" or "failure" (failure covers bad credentials and
//     inactive accounts; store faults are not counted here)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Login attempts by outcome.",
	},
	[]string{"result"},
)

// RevocationsTotal counts explicit session revocations triggered by logout.
var RevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_revocations_total",
		Help:      "Sessions revoked through logout.",
	},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// PermissionDeniedTotal counts requests rejected by the RBAC middleware.
// Labels:
//   - permission: the permission the request lacked (fixed catalogue)
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Requests rejected for a missing permission.",
	},
	[]string{"permission"},
)
