// Package metrics defines the Prometheus collectors for the BFF.
//
// Metric naming follows Prometheus conventions:
//   - ezdocu_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GateDecisions counts authorization gate outcomes per request.
	// Outcome is one of: allow, redirect_sign_in, redirect_role_home.
	GateDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ezdocu_gate_decisions_total",
			Help: "Authorization gate outcomes by decision.",
		},
		[]string{"outcome"},
	)

	// SessionRefreshes counts sliding-window session renewals.
	SessionRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ezdocu_session_refreshes_total",
			Help: "Total session cookies re-signed with an extended expiry.",
		},
	)

	// UpstreamRequestSeconds is a histogram of outbound request duration
	// by upstream name and response status class.
	UpstreamRequestSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ezdocu_upstream_request_seconds",
			Help:    "Duration of requests to upstream services in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"upstream", "status"},
	)
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		GateDecisions,
		SessionRefreshes,
		UpstreamRequestSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
