// Package telemetry provides observability for the profiles library.
//
// # Components
//
//   - metrics: Prometheus metrics for configuration loading
//
// Telemetry is opt-in: handlers run without it unless metrics are wired
// in via profiles.WithMetrics. Logging is plain log/slog and needs no
// setup beyond an optional profiles.WithLogger.
package telemetry
