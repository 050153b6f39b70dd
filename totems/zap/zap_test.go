//go:build unit

package zap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logpkg "github.com/ObliqueMotion/lib-totems/totems/log"
)

func newObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestNew_InvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: "staging"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentDevelopment, Level: "loud"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentProduction})

	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestLog_DispatchesLevels(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()
	ctx := context.Background()

	logger.Log(ctx, logpkg.LevelDebug, "d")
	logger.Log(ctx, logpkg.LevelInfo, "i")
	logger.Log(ctx, logpkg.LevelWarn, "w")
	logger.Log(ctx, logpkg.LevelError, "e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLog_Fields(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()

	logger.Log(context.Background(), logpkg.LevelError, "assertion failed",
		logpkg.String("assertion", "That"),
		logpkg.Int("count", 0),
	)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "That", fields["assertion"])
	assert.EqualValues(t, 0, fields["count"])
}

func TestLog_TraceCorrelation(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	logger.Log(ctx, logpkg.LevelError, "assertion failed")

	entries := logs.All()
	require.Len(t, entries, 1)

	sc := span.SpanContext()
	fields := entries[0].ContextMap()
	assert.Equal(t, sc.TraceID().String(), fields["trace_id"])
	assert.Equal(t, sc.SpanID().String(), fields["span_id"])
}

func TestLog_NoSpanNoCorrelationFields(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()

	logger.Log(context.Background(), logpkg.LevelInfo, "msg")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.NotContains(t, fields, "trace_id")
	assert.NotContains(t, fields, "span_id")
}

func TestWith_ChildCarriesFields(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()

	child := logger.With(logpkg.String("component", "parser"))
	child.Log(context.Background(), logpkg.LevelInfo, "msg")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "parser", entries[0].ContextMap()["component"])
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	core, _ := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(core))

	assert.True(t, logger.Enabled(logpkg.LevelError))
	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
}

func TestSync_CanceledContext(t *testing.T) {
	t.Parallel()

	logger, _ := newObservedLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, logger.Sync(ctx))
}

func TestNilLogger_SafeToUse(t *testing.T) {
	t.Parallel()

	var logger *Logger

	// Nil receivers fall back to a nop zap logger.
	logger.Log(context.Background(), logpkg.LevelError, "dropped")
	assert.False(t, logger.Enabled(logpkg.LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
}
