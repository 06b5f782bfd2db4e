package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors of the analysis engine
type Metrics struct {
	sessionsStarted   prometheus.Counter
	sessionsRejected  prometheus.Counter
	sessionsCompleted *prometheus.CounterVec
	persistFailures   prometheus.Counter
	samplesBuffered   prometheus.Counter
	progress          prometheus.Gauge
	currentLux        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		sessionsStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "light_analysis",
			Name:      "sessions_started_total",
			Help:      "Analysis sessions accepted.",
		}),
		sessionsRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: "light_analysis",
			Name:      "sessions_rejected_total",
			Help:      "Start requests rejected because a session was in progress.",
		}),
		sessionsCompleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "light_analysis",
			Name:      "sessions_completed_total",
			Help:      "Finalized sessions by verdict source and suitability.",
		}, []string{"source", "suitable"}),
		persistFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "light_analysis",
			Name:      "persist_failures_total",
			Help:      "Records that could not be stored.",
		}),
		samplesBuffered: f.NewCounter(prometheus.CounterOpts{
			Namespace: "light_analysis",
			Name:      "samples_buffered_total",
			Help:      "Sensor samples captured by running sessions.",
		}),
		progress: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "light_analysis",
			Name:      "session_progress_ratio",
			Help:      "Progress of the running session between 0 and 1.",
		}),
		currentLux: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "light_analysis",
			Name:      "current_lux",
			Help:      "Last illuminance reported by the sensor feed.",
		}),
	}
}
