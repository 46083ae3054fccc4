package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Server metrics
	ServersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wings_servers_total",
			Help: "Number of managed server containers by state",
		},
		[]string{"state"},
	)

	PowerActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wings_power_actions_total",
			Help: "Total number of power actions by action type",
		},
		[]string{"action"},
	)

	InstallRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wings_install_runs_total",
			Help: "Total number of install pipeline runs by result",
		},
		[]string{"result"},
	)

	// Event bus metrics
	EventsEmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wings_events_emitted_total",
			Help: "Total number of lifecycle events emitted to the bus",
		},
	)

	EventsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wings_events_dropped_total",
			Help: "Total number of lifecycle events dropped because the bus was full",
		},
	)

	// Node metrics
	NodeCPUPercent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wings_node_cpu_percent",
			Help: "Node-wide CPU usage percentage from the last heartbeat",
		},
	)

	NodeMemoryUsedBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wings_node_memory_used_bytes",
			Help: "Node memory in use from the last heartbeat",
		},
	)

	NodeDiskUsedBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wings_node_disk_used_bytes",
			Help: "Used bytes on the data directory filesystem from the last heartbeat",
		},
	)

	HeartbeatsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wings_heartbeats_total",
			Help: "Total number of heartbeat deliveries by result",
		},
		[]string{"result"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wings_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wings_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	WebsocketSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wings_websocket_sessions",
			Help: "Number of open console WebSocket sessions",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ServersTotal)
	prometheus.MustRegister(PowerActionsTotal)
	prometheus.MustRegister(InstallRunsTotal)
	prometheus.MustRegister(EventsEmittedTotal)
	prometheus.MustRegister(EventsDroppedTotal)
	prometheus.MustRegister(NodeCPUPercent)
	prometheus.MustRegister(NodeMemoryUsedBytes)
	prometheus.MustRegister(NodeDiskUsedBytes)
	prometheus.MustRegister(HeartbeatsTotal)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(WebsocketSessions)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer measures elapsed time for histogram observations
type Timer struct {
	start time.Time
}

// NewTimer creates a timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer started
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time in a histogram
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(t.Duration().Seconds())
}

// ObserveDurationVec records the elapsed time in a labelled histogram
func (t *Timer) ObserveDurationVec(vec *prometheus.HistogramVec, labels ...string) {
	vec.WithLabelValues(labels...).Observe(t.Duration().Seconds())
}
