package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "lib-totems/opentelemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
// Used by the assert package for label sanitization.
const MaxMetricLabelLength = 64

// AttrPrefixAssertion is the prefix for assertion event attribute keys.
const AttrPrefixAssertion = "assertion."

// MetricAssertionFailedTotal is the counter metric for failed invariant assertions.
const MetricAssertionFailedTotal = "assertion_failed_total"

// Telemetry event names.
const (
	// EventAssertionFailed is the span event name for assertion failures.
	EventAssertionFailed = "assertion.failed"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
