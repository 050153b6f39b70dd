package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	constant "github.com/ObliqueMotion/lib-totems/totems/constants"
	"github.com/ObliqueMotion/lib-totems/totems/log"
)

// MetricsFactory provides a thread-safe factory for creating and managing
// OpenTelemetry counter and histogram metrics with lazy initialization using
// sync.Map for concurrent access.
type MetricsFactory struct {
	meter      metric.Meter
	counters   sync.Map // string -> metric.Int64Counter
	histograms sync.Map // string -> metric.Int64Histogram
	logger     log.Logger
}

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Metric represents a metric that can be collected by the library.
// Buckets applies to histograms only; nil selects DefaultLatencyBuckets.
type Metric struct {
	Name        string
	Description string
	Unit        string
	Buckets     []float64
}

// DefaultLatencyBuckets are histogram boundaries in milliseconds, tuned for
// sub-millisecond-to-seconds in-process handling times.
var DefaultLatencyBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// MetricAssertionFailed counts failed invariant assertions.
var MetricAssertionFailed = Metric{
	Name:        constant.MetricAssertionFailedTotal,
	Unit:        "1",
	Description: "Total number of failed assertions",
}

// MetricAssertionFailureDuration measures time spent handling an assertion
// failure (detail formatting, stack capture, telemetry recording).
var MetricAssertionFailureDuration = Metric{
	Name:        "assertion_failure_duration_ms",
	Unit:        "ms",
	Description: "Time spent handling assertion failures in milliseconds",
}

// NewMetricsFactory creates a new MetricsFactory instance.
func NewMetricsFactory(meter metric.Meter, logger log.Logger) (*MetricsFactory, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	return &MetricsFactory{
		meter:  meter,
		logger: logger,
	}, nil
}

// NewNopFactory returns a MetricsFactory backed by OpenTelemetry's no-op meter.
// It is safe for use as a fallback when a real meter is unavailable.
func NewNopFactory() *MetricsFactory {
	return &MetricsFactory{
		meter:  noop.NewMeterProvider().Meter("nop"),
		logger: log.NewNop(),
	}
}

// Counter creates or retrieves a counter metric and returns a builder for fluent API usage.
func (f *MetricsFactory) Counter(m Metric) (*CounterBuilder, error) {
	counter, err := f.getOrCreateCounter(m)
	if err != nil {
		return nil, err
	}

	return &CounterBuilder{
		factory: f,
		counter: counter,
		name:    m.Name,
	}, nil
}

// Histogram creates or retrieves a histogram metric and returns a builder for fluent API usage.
func (f *MetricsFactory) Histogram(m Metric) (*HistogramBuilder, error) {
	if m.Buckets == nil {
		m.Buckets = DefaultLatencyBuckets
	}

	histogram, err := f.getOrCreateHistogram(m)
	if err != nil {
		return nil, err
	}

	return &HistogramBuilder{
		factory:   f,
		histogram: histogram,
		name:      m.Name,
	}, nil
}

// getOrCreateCounter lazily creates or retrieves an existing counter.
func (f *MetricsFactory) getOrCreateCounter(m Metric) (metric.Int64Counter, error) {
	if counter, exists := f.counters.Load(m.Name); exists {
		if c, ok := counter.(metric.Int64Counter); ok {
			return c, nil
		}

		return nil, fmt.Errorf("counter cache contains invalid type for %q", m.Name)
	}

	counterOpts := []metric.Int64CounterOption{
		metric.WithDescription(m.Description),
	}
	if m.Unit != "" {
		counterOpts = append(counterOpts, metric.WithUnit(m.Unit))
	}

	counter, err := f.meter.Int64Counter(m.Name, counterOpts...)
	if err != nil {
		if f.logger != nil {
			f.logger.Log(context.Background(), log.LevelError, "failed to create counter metric",
				log.String("metric_name", m.Name), log.Err(err))
		}

		return nil, fmt.Errorf("create counter %q: %w", m.Name, err)
	}

	if actual, loaded := f.counters.LoadOrStore(m.Name, counter); loaded {
		// Another goroutine created it first, use that one
		if c, ok := actual.(metric.Int64Counter); ok {
			return c, nil
		}

		return nil, fmt.Errorf("counter cache contains invalid type for %q", m.Name)
	}

	return counter, nil
}

// getOrCreateHistogram lazily creates or retrieves an existing histogram.
// Bucket boundaries are fixed per metric name; the first registration wins.
func (f *MetricsFactory) getOrCreateHistogram(m Metric) (metric.Int64Histogram, error) {
	if histogram, exists := f.histograms.Load(m.Name); exists {
		if h, ok := histogram.(metric.Int64Histogram); ok {
			return h, nil
		}

		return nil, fmt.Errorf("histogram cache contains invalid type for %q", m.Name)
	}

	histogramOpts := []metric.Int64HistogramOption{
		metric.WithDescription(m.Description),
		metric.WithExplicitBucketBoundaries(m.Buckets...),
	}
	if m.Unit != "" {
		histogramOpts = append(histogramOpts, metric.WithUnit(m.Unit))
	}

	histogram, err := f.meter.Int64Histogram(m.Name, histogramOpts...)
	if err != nil {
		if f.logger != nil {
			f.logger.Log(context.Background(), log.LevelError, "failed to create histogram metric",
				log.String("metric_name", m.Name), log.Err(err))
		}

		return nil, fmt.Errorf("create histogram %q: %w", m.Name, err)
	}

	if actual, loaded := f.histograms.LoadOrStore(m.Name, histogram); loaded {
		if h, ok := actual.(metric.Int64Histogram); ok {
			return h, nil
		}

		return nil, fmt.Errorf("histogram cache contains invalid type for %q", m.Name)
	}

	return histogram, nil
}
