// Package metrics defines and registers the Prometheus metrics of the user
// registry. It is the single source of truth for metric names, labels and
// help strings.
//
// All metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_registry"

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// ── Registry metrics ──────────────────────────────────────────────────────────

// OperationsTotal counts registry operations.
// Labels:
//   - operation: "register", "get", "update", "delete", "activate", "deactivate", "find_by_email"
//   - result: "ok" or "rejected"
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of registry operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// Users tracks the current number of entries in the registry.
// Label:
//   - state: "active" or "inactive"
var Users = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users",
		Help:      "Current number of users held by the registry, by state.",
	},
	[]string{"state"},
)

// ── Batch metrics ─────────────────────────────────────────────────────────────

// BatchUsersTotal counts users seen by batch imports.
// Labels:
//   - mode: "failfast" or "atomic"
//   - result: "ok" (committed) or "rejected" (not committed)
var BatchUsersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_users_total",
		Help:      "Total number of users processed by batch imports, by mode and result.",
	},
	[]string{"mode", "result"},
)

// Observe records the outcome of a single operation.
func Observe(operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultRejected
	}
	OperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetUsers publishes the registry size split by state.
func SetUsers(total, active int) {
	Users.WithLabelValues("active").Set(float64(active))
	Users.WithLabelValues("inactive").Set(float64(total - active))
}

// WriteTextfile dumps every registered metric in the text exposition format,
// for pickup by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
