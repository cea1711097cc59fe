// Package metrics provides Prometheus metrics for configuration loading.
//
// Metrics are registered against a caller-supplied registry, so embedding
// applications keep full control over exposition.
//
// # Basic Usage
//
// Create metrics and wire them into a handler:
//
//	registry := prometheus.NewRegistry()
//	loaderMetrics := metrics.NewLoaderMetrics(registry)
//
//	handler, err := profiles.New("config.ini",
//	    profiles.WithMetrics(loaderMetrics),
//	)
//
// Every call to Load/Reload records an attempt, its duration, and, on
// failure, the error kind; successful loads additionally update the
// profile and key count gauges.
package metrics
