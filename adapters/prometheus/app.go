package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/decider-go/core/app"
	"github.com/codewandler/decider-go/core/metrics"
)

// appMetrics implements app.AppMetrics using Prometheus.
type appMetrics struct {
	handleDuration  *prometheus.HistogramVec
	commandsHandled *prometheus.CounterVec
	eventsProduced  *prometheus.CounterVec
	cascadeDepth    *prometheus.HistogramVec
}

// NewAppMetrics creates a new Prometheus implementation of app.AppMetrics.
func NewAppMetrics(reg prometheus.Registerer) app.AppMetrics {
	m := &appMetrics{
		handleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "decider_handle_duration_seconds",
			Help:    "Handle latency in seconds",
			Buckets: defaultBuckets,
		}, []string{"component"}),

		commandsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "decider_commands_handled_total",
			Help: "Total number of handled commands/events/action-results",
		}, []string{"component", "success"}),

		eventsProduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "decider_events_produced_total",
			Help: "Total number of events/actions produced by Handle calls",
		}, []string{"component"}),

		cascadeDepth: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "decider_cascade_depth",
			Help:    "Deepest recursion per orchestrated cascade",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}, []string{"component"}),
	}

	reg.MustRegister(
		m.handleDuration,
		m.commandsHandled,
		m.eventsProduced,
		m.cascadeDepth,
	)

	return m
}

func (m *appMetrics) HandleDuration(component string) metrics.Timer {
	return newTimer(m.handleDuration.WithLabelValues(component))
}

func (m *appMetrics) CommandsHandled(component string, success bool) {
	m.commandsHandled.WithLabelValues(component, boolToStr(success)).Inc()
}

func (m *appMetrics) EventsProduced(component string, n int) {
	m.eventsProduced.WithLabelValues(component).Add(float64(n))
}

func (m *appMetrics) CascadeDepth(component string, depth int) {
	m.cascadeDepth.WithLabelValues(component).Observe(float64(depth))
}

var _ app.AppMetrics = (*appMetrics)(nil)
