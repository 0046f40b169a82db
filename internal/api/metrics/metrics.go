// Package metrics defines and registers all custom Prometheus metrics for the
// account system. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry at
// package initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// LoginsTotal counts credential authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registerUser calls.
// Label:
//   - result: "created", "rejected" (uniqueness violation), or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// UserLookupsTotal counts getUser dispatches.
// Label:
//   - kind: "ID", "EMAIL", or "NAME"
var UserLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_lookups_total",
		Help:      "Total number of single-user lookups, labelled by lookup kind.",
	},
	[]string{"kind"},
)

// UserUpdatesTotal counts successful partial updates.
var UserUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_updates_total",
		Help:      "Total number of successfully applied user updates.",
	},
)
