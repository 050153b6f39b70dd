// Package zap provides the zap-backed implementation of the log.Logger interface.
//
// Logs emitted while an OpenTelemetry span is active are enriched with
// trace_id and span_id so assertion failures correlate with traces.
package zap
