// Package metrics provides a thread-safe factory for the OpenTelemetry
// counters and histograms emitted by the assertion packages.
package metrics
