// Package opentelemetry bootstraps the tracer and meter providers used by the
// assertion telemetry: OTLP gRPC exporters, a resource identifying the
// library, and a MetricsFactory over the meter provider.
//
//	tl, err := opentelemetry.Initialize(ctx, &opentelemetry.Config{
//	    LibraryName:       "lib-totems",
//	    ServiceName:       "ledger",
//	    CollectorEndpoint: "otel-collector:4317",
//	    Enable:            true,
//	    Logger:            logger,
//	})
//	assert.InitAssertionMetrics(tl.MetricsFactory)
//	defer tl.Shutdown(ctx)
package opentelemetry
