package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	Relays            *prometheus.CounterVec
	ProviderResponses *prometheus.CounterVec
	ProviderLatency   prometheus.Histogram
}

// New registers all instruments with the given registerer.
// A custom registry keeps tests isolated from prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Relays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alarm_relays_total",
			Help: "Inbound alarm events by outcome (sent, rejected, failed).",
		}, []string{"outcome"}),

		ProviderResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alarm_provider_responses_total",
			Help: "Provider replies by HTTP status code.",
		}, []string{"status"}),

		ProviderLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "alarm_provider_seconds",
			Help:    "Round-trip time of the outbound provider call.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.Relays, m.ProviderResponses, m.ProviderLatency)
	return m
}

// RelayHooks returns the callbacks expected by service.MetricHooks.
// Keeps the prometheus import out of the service package.
func (m *Metrics) RelayHooks() (
	onOutcome func(outcome string),
	onProvider func(status int, latency time.Duration),
) {
	onOutcome = func(outcome string) {
		m.Relays.WithLabelValues(outcome).Inc()
	}
	onProvider = func(status int, latency time.Duration) {
		m.ProviderResponses.WithLabelValues(strconv.Itoa(status)).Inc()
		m.ProviderLatency.Observe(latency.Seconds())
	}
	return
}
