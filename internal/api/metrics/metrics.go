// Package metrics defines and registers all custom Prometheus metrics for the
// learning-platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "learning"

// LoginsTotal counts login attempts by outcome.
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

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// TokenRefreshesTotal counts successful access-token refreshes.
var TokenRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of access tokens minted via refresh.",
	},
)

// LessonCompletionsTotal counts lesson-completion events accepted for
// asynchronous processing.
var LessonCompletionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lesson_completions_total",
		Help:      "Total number of lesson completions enqueued.",
	},
)

// ProgressQueueDepth tracks events waiting in each progress worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ProgressQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "progress_queue_depth",
		Help:      "Current number of completion events pending per worker.",
	},
	[]string{"worker_id"},
)
