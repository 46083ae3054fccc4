/*
Package metrics provides Prometheus metrics collection and exposition for the
wings daemon.

All metrics are registered against the default Prometheus registry at package
init and exposed by the HTTP server on GET /metrics, unauthenticated like the
health endpoint. Metric names carry the wings_ prefix.

# Architecture

	┌──────────────────── METRICS SYSTEM ───────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐            │
	│  │          Prometheus Registry               │            │
	│  │  - Global DefaultRegistry                  │            │
	│  │  - MustRegister at package init            │            │
	│  │  - Go runtime metrics included             │            │
	│  └──────────────────┬─────────────────────────┘            │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐            │
	│  │           Metric Categories                │            │
	│  │                                            │            │
	│  │  Servers:   count by state (gauge)         │            │
	│  │  Lifecycle: power actions, install runs    │            │
	│  │  Events:    emitted, dropped               │            │
	│  │  Node:      cpu, memory, disk telemetry    │            │
	│  │  Panel:     heartbeat outcomes             │            │
	│  │  API:       request count, duration, WS    │            │
	│  └──────────────────┬─────────────────────────┘            │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐            │
	│  │        HTTP Exposition (/metrics)          │            │
	│  └────────────────────────────────────────────┘            │
	│                                                            │
	└────────────────────────────────────────────────────────────┘

# Core Components

Metric Variables: package-level counters, gauges, and histograms incremented
directly by the owning components (manager, installer, events, heartbeat,
HTTP/WS handlers). No wrapper layer; call sites touch the Prometheus types.

Collector: a background sampler that periodically asks the lifecycle manager
for the managed-server list and refreshes the per-state server gauge. It
writes every known state on each cycle so gauges for emptied states fall back
to zero instead of going stale.

Timer: a small helper for observing elapsed time into histograms, used by the
HTTP middleware for request durations.

# Usage

Expose the endpoint:

	mux.Handle("/metrics", metrics.Handler())

Increment from a component:

	metrics.PowerActionsTotal.WithLabelValues("start").Inc()

Time an operation:

	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.APIRequestDuration, r.Method)

Run the state sampler:

	collector := metrics.NewCollector(manager)
	collector.Start()
	defer collector.Stop()

# Integration Points

  - pkg/manager: power action counters, ServerLister for the collector
  - pkg/installer: install run outcomes
  - pkg/events: emitted and dropped event counters
  - pkg/heartbeat: node telemetry gauges and heartbeat outcomes
  - pkg/api: request counters, duration histogram, WS session gauge,
    /metrics route
*/
package metrics
