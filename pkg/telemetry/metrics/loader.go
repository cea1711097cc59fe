package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LoaderMetrics tracks metrics related to configuration loading.
//
// Metrics:
//   - profiles_loads_total: Total load attempts by outcome
//   - profiles_load_errors_total: Load failures by error kind
//   - profiles_load_duration_seconds: Load duration
//   - profiles_profiles: Profile count of the last successful load
//   - profiles_keys: Key count of the last successful load
type LoaderMetrics struct {
	// Total load attempts
	loadsTotal *prometheus.CounterVec

	// Load failures by error kind
	loadErrorsTotal *prometheus.CounterVec

	// Load duration histogram
	loadDuration prometheus.Histogram

	// Document shape after the last successful load
	profileCount prometheus.Gauge
	keyCount     prometheus.Gauge
}

// NewLoaderMetrics creates and registers loader metrics with the provided
// registry.
func NewLoaderMetrics(registry *prometheus.Registry) *LoaderMetrics {
	lm := &LoaderMetrics{
		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "profiles",
				Name:      "loads_total",
				Help:      "Total number of configuration load attempts",
			},
			[]string{"outcome"},
		),

		loadErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "profiles",
				Name:      "load_errors_total",
				Help:      "Total number of configuration load failures by error kind",
			},
			[]string{"kind"},
		),

		loadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "profiles",
				Name:      "load_duration_seconds",
				Help:      "Duration of configuration loads in seconds",
				// Loads are file reads plus a line walk (< 10ms typical)
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 15), // 1µs to 16ms
			},
		),

		profileCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "profiles",
				Name:      "profiles",
				Help:      "Number of profiles in the last successfully loaded configuration",
			},
		),

		keyCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "profiles",
				Name:      "keys",
				Help:      "Number of keys in the last successfully loaded configuration",
			},
		),
	}

	registry.MustRegister(
		lm.loadsTotal,
		lm.loadErrorsTotal,
		lm.loadDuration,
		lm.profileCount,
		lm.keyCount,
	)

	return lm
}

// RecordLoad records a load attempt.
//
// Parameters:
//   - outcome: "success" or "error"
//   - duration: Time taken by the load
func (lm *LoaderMetrics) RecordLoad(outcome string, duration time.Duration) {
	lm.loadsTotal.WithLabelValues(outcome).Inc()
	lm.loadDuration.Observe(duration.Seconds())
}

// RecordError records a load failure by error kind (e.g. "duplicate_key").
func (lm *LoaderMetrics) RecordError(kind string) {
	lm.loadErrorsTotal.WithLabelValues(kind).Inc()
}

// SetDocumentSize records the shape of the last successfully loaded
// configuration.
func (lm *LoaderMetrics) SetDocumentSize(profiles, keys int) {
	lm.profileCount.Set(float64(profiles))
	lm.keyCount.Set(float64(keys))
}
