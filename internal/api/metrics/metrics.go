// Package metrics defines and registers all custom Prometheus metrics for the
// FleetLedger API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fleetledger"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRevocationsTotal counts tokens revoked through logout.
var TokenRevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_revocations_total",
		Help:      "Total number of bearer tokens revoked via logout.",
	},
)

// EntityWritesTotal counts successful write operations per entity collection.
// Labels:
//   - entity: collection name (e.g. "clientes", "usuarios")
//   - op: "create", "update" or "deactivate"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)
