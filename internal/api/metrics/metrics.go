// Package metrics defines the custom Prometheus metrics for the auth API.
// It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskvault"

// Token validation outcome labels used by the request authenticator.
const (
	TokenValid            = "valid"
	TokenExpired          = "expired"
	TokenMalformed        = "malformed"
	TokenSignatureInvalid = "signature_invalid"
	TokenUnknownSubject   = "unknown_subject"
)

// TokenValidationsTotal counts token validation attempts by outcome.
// Label:
//   - result: "valid", "expired", "malformed", "signature_invalid",
//     or "unknown_subject" (token valid but identity no longer exists)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer-token validations, by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts signin attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of signin attempts, by outcome.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts by outcome.
// Label:
//   - result: "success", "duplicate_username", or "duplicate_email"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"result"},
)

// AuditEventsDroppedTotal counts audit events dropped because the
// dispatcher queue was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to a full queue.",
	},
)
