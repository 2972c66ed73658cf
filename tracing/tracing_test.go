package tracing

import (
	"context"
	"fmt"
	"testing"

	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/settings"
	"github.com/bsv-blockchain/ringselect/ulogger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type lineLogger struct {
	lastLog string
}

func newLineLogger() *lineLogger {
	return &lineLogger{}
}

func (l *lineLogger) New(service string, options ...ulogger.Option) ulogger.Logger {
	return l
}

func (l *lineLogger) Duplicate(options ...ulogger.Option) ulogger.Logger {
	return l
}

func (l *lineLogger) LogLevel() int {
	return 0
}

func (l *lineLogger) SetLogLevel(level string) {}

func (l *lineLogger) Debugf(format string, args ...interface{}) {
	l.log("DEBUG", format, args...)
}

func (l *lineLogger) Infof(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

func (l *lineLogger) Warnf(format string, args ...interface{}) {
	l.log("WARN", format, args...)
}

func (l *lineLogger) Errorf(format string, args ...interface{}) {
	l.log("ERROR", format, args...)
}

func (l *lineLogger) Fatalf(format string, args ...interface{}) {
	l.log("FATAL", format, args...)
}

func (l *lineLogger) log(level string, format string, args ...interface{}) {
	l.lastLog = fmt.Sprintf(format, args...)
}

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})

	return recorder
}

func TestTracing(t *testing.T) {
	recorder := recordSpans(t)
	logger := newLineLogger()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_tracing_counter"})
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "test_tracing_histogram"})

	_, stat, deferFn := StartTracing(
		context.Background(),
		"TestTracing",
		WithLogMessage(logger, "%s %s", "hello", "world"),
		WithCounter(counter),
		WithHistogram(histogram),
		WithAttributes(attribute.Int("ring_length", 16)),
	)
	require.NotNil(t, stat)

	assert.Equal(t, "hello world", logger.lastLog)

	deferFn()

	assert.Contains(t, logger.lastLog, "hello world DONE in")
	assert.InDelta(t, 1, testutil.ToFloat64(counter), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(histogram))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "TestTracing", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("ring_length", 16))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestTracingRecordsError(t *testing.T) {
	recorder := recordSpans(t)

	ctx, _, deferFn := StartTracing(context.Background(), "parent")
	_, _, childFn := StartTracing(ctx, "child")

	childFn(nil, errors.NewSamplingExhaustedError("no candidates"))
	deferFn()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	child := spans[0]
	assert.Equal(t, "child", child.Name())
	assert.Equal(t, codes.Error, child.Status().Code)
	assert.Contains(t, child.Status().Description, "no candidates")
	assert.Equal(t, spans[1].SpanContext().SpanID(), child.Parent().SpanID())
}

func TestInitOtelTracerDisabled(t *testing.T) {
	tSettings := settings.NewSettings()
	tSettings.Tracing.Enabled = false

	shutdown, err := InitOtelTracer(context.Background(), tSettings)
	require.NoError(t, err)
	assert.Nil(t, shutdown)
}

func TestInitOtelTracerNoCollector(t *testing.T) {
	tSettings := settings.NewSettings()
	tSettings.Tracing.Enabled = true
	tSettings.Tracing.CollectorURL = nil

	_, err := InitOtelTracer(context.Background(), tSettings)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}
