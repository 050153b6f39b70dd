package opentelemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	constant "github.com/ObliqueMotion/lib-totems/totems/constants"
	"github.com/ObliqueMotion/lib-totems/totems/log"
	"github.com/ObliqueMotion/lib-totems/totems/opentelemetry/metrics"
)

var (
	// ErrNilConfig indicates that a nil config was provided to Initialize.
	ErrNilConfig = errors.New("telemetry config cannot be nil")
	// ErrNilLogger indicates that Config.Logger is nil.
	ErrNilLogger = errors.New("telemetry config logger cannot be nil")
)

// Config carries the identity and endpoint settings for telemetry providers.
type Config struct {
	LibraryName       string
	ServiceName       string
	ServiceVersion    string
	DeploymentEnv     string
	CollectorEndpoint string
	Enable            bool
	Logger            log.Logger
}

// Telemetry holds the initialized providers and the metrics factory fed by
// them. Pass MetricsFactory to assert.InitAssertionMetrics to enable the
// assertion failure counter.
type Telemetry struct {
	Config
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	MetricsFactory *metrics.MetricsFactory
	shutdown       func(ctx context.Context)
}

func (c *Config) newResource() *sdkresource.Resource {
	// Custom attributes only, avoiding schema URL conflicts with the default resource.
	return sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(c.ServiceName),
		semconv.ServiceVersion(c.ServiceVersion),
		semconv.DeploymentEnvironment(c.DeploymentEnv),
		semconv.TelemetrySDKName(constant.TelemetrySDKName),
		semconv.TelemetrySDKLanguageGo,
	)
}

func (c *Config) newTracerExporter(ctx context.Context) (*otlptrace.Exporter, error) {
	return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(c.CollectorEndpoint), otlptracegrpc.WithInsecure())
}

func (c *Config) newMetricExporter(ctx context.Context) (*otlpmetricgrpc.Exporter, error) {
	return otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpoint(c.CollectorEndpoint), otlpmetricgrpc.WithInsecure())
}

// Initialize builds the tracer and meter providers, sets them globally, and
// returns the assembled Telemetry. With Enable false it returns no-op
// providers that record nothing and a working MetricsFactory over them.
func Initialize(ctx context.Context, cfg *Config) (*Telemetry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	l := cfg.Logger

	if !cfg.Enable {
		l.Log(ctx, log.LevelWarn, "telemetry disabled")

		mp := sdkmetric.NewMeterProvider()
		tp := sdktrace.NewTracerProvider()

		factory, err := metrics.NewMetricsFactory(mp.Meter(cfg.LibraryName), l)
		if err != nil {
			return nil, fmt.Errorf("create metrics factory: %w", err)
		}

		return &Telemetry{
			Config:         *cfg,
			TracerProvider: tp,
			MeterProvider:  mp,
			MetricsFactory: factory,
			shutdown:       func(context.Context) {},
		}, nil
	}

	l.Log(ctx, log.LevelInfo, "initializing telemetry",
		log.String("endpoint", cfg.CollectorEndpoint),
		log.String("service", cfg.ServiceName))

	rsc := cfg.newResource()

	tExp, err := cfg.newTracerExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize tracer exporter: %w", err)
	}

	mExp, err := cfg.newMetricExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(rsc),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(mExp)),
	)
	otel.SetMeterProvider(mp)

	factory, err := metrics.NewMetricsFactory(mp.Meter(cfg.LibraryName), l)
	if err != nil {
		return nil, fmt.Errorf("create metrics factory: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(tExp),
		sdktrace.WithResource(rsc),
	)
	otel.SetTracerProvider(tp)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	shutdown := func(ctx context.Context) {
		if err := mp.Shutdown(ctx); err != nil {
			l.Log(ctx, log.LevelError, "shutdown meter provider", log.Err(err))
		}

		if err := tp.Shutdown(ctx); err != nil {
			l.Log(ctx, log.LevelError, "shutdown tracer provider", log.Err(err))
		}

		if err := mExp.Shutdown(ctx); err != nil {
			l.Log(ctx, log.LevelError, "shutdown metric exporter", log.Err(err))
		}

		if err := tExp.Shutdown(ctx); err != nil {
			l.Log(ctx, log.LevelError, "shutdown tracer exporter", log.Err(err))
		}
	}

	l.Log(ctx, log.LevelInfo, "telemetry initialized")

	return &Telemetry{
		Config:         *cfg,
		TracerProvider: tp,
		MeterProvider:  mp,
		MetricsFactory: factory,
		shutdown:       shutdown,
	}, nil
}

// Shutdown flushes and stops the providers and exporters.
func (t *Telemetry) Shutdown(ctx context.Context) {
	t.shutdown(ctx)
}
