//go:build unit

package assert

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ObliqueMotion/lib-totems/totems/log"
	"github.com/ObliqueMotion/lib-totems/totems/opentelemetry/metrics"
	"github.com/ObliqueMotion/lib-totems/totems/runtime"
)

// testLogger captures log calls for verification.
type testLogger struct {
	mu       sync.Mutex
	messages []string
	fields   [][]log.Field
}

func (l *testLogger) Log(_ context.Context, _ log.Level, msg string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func (l *testLogger) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.messages) == 0 {
		return ""
	}

	return l.messages[len(l.messages)-1]
}

func (l *testLogger) lastFields() []log.Field {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.fields) == 0 {
		return nil
	}

	return l.fields[len(l.fields)-1]
}

// --- AssertionError Tests ---

func TestAssertionError_NilReceiver(t *testing.T) {
	t.Parallel()

	var entry *AssertionError
	msg := entry.Error()
	require.Equal(t, ErrAssertionFailed.Error(), msg)
}

func TestAssertionError_WithoutDetails(t *testing.T) {
	t.Parallel()

	entry := &AssertionError{
		Assertion: "That",
		Message:   "some message",
		Component: "comp",
		Operation: "op",
		Details:   "",
	}

	msg := entry.Error()
	require.Equal(t, "assertion failed: some message", msg)
}

func TestAssertionError_WithDetails(t *testing.T) {
	t.Parallel()

	entry := &AssertionError{
		Assertion: "NotNil",
		Message:   "value required",
		Details:   "    key=value",
	}

	msg := entry.Error()
	require.Contains(t, msg, "assertion failed: value required")
	require.Contains(t, msg, "key=value")
}

func TestAssertionError_Unwrap(t *testing.T) {
	t.Parallel()

	entry := &AssertionError{Message: "test"}
	require.ErrorIs(t, entry, ErrAssertionFailed)
}

// --- Core Method Tests ---

func TestThat_True_ReturnsNil(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "comp", "op")

	require.NoError(t, asserter.That(context.Background(), true, "never fails"))
}

func TestThat_False_ReturnsAssertionError(t *testing.T) {
	t.Parallel()

	logger := &testLogger{}
	asserter := New(context.Background(), logger, "parser", "parse")

	err := asserter.That(context.Background(), false, "count must be positive", "count", -1)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrAssertionFailed)

	var entry *AssertionError
	require.ErrorAs(t, err, &entry)
	assert.Equal(t, "That", entry.Assertion)
	assert.Equal(t, "parser", entry.Component)
	assert.Equal(t, "parse", entry.Operation)
	assert.Contains(t, entry.Details, "count=-1")

	assert.Contains(t, logger.last(), "ASSERTION FAILED: count must be positive")
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "", "")
	ctx := context.Background()

	require.NoError(t, asserter.NotNil(ctx, "value", "must not be nil"))

	require.Error(t, asserter.NotNil(ctx, nil, "must not be nil"))

	// Typed nil hiding behind a non-nil interface must still fail.
	var typedNil *testLogger
	require.Error(t, asserter.NotNil(ctx, typedNil, "must not be nil"))
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "", "")
	ctx := context.Background()

	require.NoError(t, asserter.NotEmpty(ctx, "id", "id required"))
	require.Error(t, asserter.NotEmpty(ctx, "", "id required"))
}

func TestNoError(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "", "")
	ctx := context.Background()

	require.NoError(t, asserter.NoError(ctx, nil, "must succeed"))

	boom := errors.New("boom")
	err := asserter.NoError(ctx, boom, "must succeed")

	var entry *AssertionError
	require.ErrorAs(t, err, &entry)
	assert.Contains(t, entry.Details, "error=boom")
	assert.Contains(t, entry.Details, "error_type=*errors.errorString")
}

func TestNever_AlwaysFails(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "", "")

	err := asserter.Never(context.Background(), "unreachable", "status", "weird")

	require.Error(t, err)

	var entry *AssertionError
	require.ErrorAs(t, err, &entry)
	assert.Equal(t, "Never", entry.Assertion)
}

func TestNilAsserter_StillFailsSafely(t *testing.T) {
	t.Parallel()

	var asserter *Asserter

	err := asserter.That(context.Background(), false, "nil receiver")

	require.ErrorIs(t, err, ErrAssertionFailed)
}

func TestHalt_NilError_NoEffect(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "test", "halt")
	// Halt with nil error should be a no-op, no panic or goexit.
	asserter.Halt(nil)
}

func TestHalt_Error_StopsGoroutine(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), nil, "test", "halt")

	reached := false
	done := make(chan struct{})

	go func() {
		defer close(done)
		asserter.Halt(errors.New("stop"))
		reached = true
	}()

	<-done
	assert.False(t, reached, "code after Halt must not run")
}

// --- Formatting Tests ---

func TestTruncateValue_ShortValue(t *testing.T) {
	t.Parallel()

	result := truncateValue("hello")
	require.Equal(t, "hello", result)
}

func TestTruncateValue_ExactMaxLength(t *testing.T) {
	t.Parallel()

	val := strings.Repeat("a", maxValueLength)
	result := truncateValue(val)
	require.Equal(t, val, result)
}

func TestTruncateValue_LongValue(t *testing.T) {
	t.Parallel()

	val := strings.Repeat("b", maxValueLength+50)
	result := truncateValue(val)
	require.Len(t, result, maxValueLength+len("... (truncated 50 chars)"))
	require.Contains(t, result, "... (truncated 50 chars)")
}

func TestFormatKeyValueLines_OddPairs(t *testing.T) {
	t.Parallel()

	details := formatKeyValueLines([]any{"key_without_value"})

	assert.Contains(t, details, "key_without_value=MISSING_VALUE")
}

func TestFormatKeyValueLines_SanitizesControlChars(t *testing.T) {
	t.Parallel()

	details := formatKeyValueLines([]any{"input", "line1\nline2"})

	assert.Contains(t, details, `line1\nline2`)
	assert.NotContains(t, details, "line1\nline2")
}

// --- values Tests ---

func TestValues_NilAsserter(t *testing.T) {
	t.Parallel()

	var asserter *Asserter
	ctx, logger, component, operation := asserter.values(context.Background())
	require.NotNil(t, ctx)
	require.Nil(t, logger)
	require.Empty(t, component)
	require.Empty(t, operation)
}

func TestValues_WithAsserterNilCtx(t *testing.T) {
	t.Parallel()

	logger := &testLogger{}
	asserter := New(context.Background(), logger, "comp", "op")
	//nolint:staticcheck // intentionally passing nil ctx
	ctx, l, c, o := asserter.values(nil)
	require.NotNil(t, ctx)
	require.Equal(t, logger, l)
	require.Equal(t, "comp", c)
	require.Equal(t, "op", o)
}

// --- Observability Tests ---

func TestFail_RecordsSpanEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder))

	ctx, span := provider.Tracer("test").Start(context.Background(), "op")

	asserter := New(ctx, nil, "parser", "parse")
	_ = asserter.That(ctx, false, "invariant broken")

	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.Len(t, events, 2, "expected assertion event plus recorded error")
	assert.Equal(t, AssertionSpanEventName, events[0].Name)
}

func TestFail_RecordsMetric(t *testing.T) {
	ResetAssertionMetrics()
	t.Cleanup(ResetAssertionMetrics)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	factory, err := metrics.NewMetricsFactory(provider.Meter("test"), log.NewNop())
	require.NoError(t, err)

	InitAssertionMetrics(factory)

	asserter := New(context.Background(), nil, "parser", "parse")
	_ = asserter.That(context.Background(), false, "invariant broken")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	failed, found := byName[metrics.MetricAssertionFailed.Name]
	require.True(t, found)

	sum, ok := failed.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.EqualValues(t, 1, sum.DataPoints[0].Value)

	duration, found := byName[metrics.MetricAssertionFailureDuration.Name]
	require.True(t, found, "failure handling duration must be recorded")

	hist, ok := duration.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.EqualValues(t, 1, hist.DataPoints[0].Count)
}

func TestInitAssertionMetrics_NilFactoryIgnored(t *testing.T) {
	ResetAssertionMetrics()
	t.Cleanup(ResetAssertionMetrics)

	InitAssertionMetrics(nil)

	assert.Nil(t, GetAssertionMetrics())
}

// --- Stack Gating Tests ---

func TestShouldIncludeStack_ProductionMode(t *testing.T) {
	initial := runtime.IsProductionMode()
	t.Cleanup(func() { runtime.SetProductionMode(initial) })

	runtime.SetProductionMode(true)
	assert.False(t, shouldIncludeStack())

	runtime.SetProductionMode(false)
	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "")
	assert.True(t, shouldIncludeStack())
}

func TestFail_StackLoggedAsField(t *testing.T) {
	initial := runtime.IsProductionMode()
	t.Cleanup(func() { runtime.SetProductionMode(initial) })

	runtime.SetProductionMode(false)
	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "")

	logger := &testLogger{}
	asserter := New(context.Background(), logger, "parser", "parse")

	require.Error(t, asserter.That(context.Background(), false, "count must be positive"))

	fields := logger.lastFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "stack", fields[0].Key)

	stack, ok := fields[0].Value.(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
	assert.NotContains(t, logger.last(), "stack trace:")
}

func TestShouldIncludeStack_EnvFallback(t *testing.T) {
	initial := runtime.IsProductionMode()
	t.Cleanup(func() { runtime.SetProductionMode(initial) })

	runtime.SetProductionMode(false)
	t.Setenv("ENV", "production")

	assert.False(t, shouldIncludeStack())
}
