// Package metrics defines all custom Prometheus metrics for the club API. It
// is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitclub"

// ── Session lifecycle metrics ─────────────────────────────────────────────────

// SessionsScheduledTotal counts successfully scheduled sessions.
var SessionsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_scheduled_total",
		Help:      "Total number of sessions scheduled.",
	},
)

// SessionsDeletedTotal counts session deletions, including idempotent
// deletes of already-absent ids.
var SessionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_deleted_total",
		Help:      "Total number of session delete operations.",
	},
)

// AttendanceMarkedTotal counts attendance-marking operations (each call
// replaces a session's absentee set wholesale).
var AttendanceMarkedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_marked_total",
		Help:      "Total number of attendance marking operations.",
	},
)

// SessionUpdateConflictsTotal counts optimistic-concurrency losers on
// session updates.
var SessionUpdateConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_update_conflicts_total",
		Help:      "Total number of session updates rejected by the version check.",
	},
)

// ── Roster cache metrics ──────────────────────────────────────────────────────

// RosterCacheTotal counts roster cache lookups.
// Label:
//   - result: "hit" or "miss"
var RosterCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_cache_total",
		Help:      "Total number of roster cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
