// Package tracing wraps OpenTelemetry spans together with gocore stats, prometheus
// observations and start/finish log lines.
package tracing

import (
	"context"
	"fmt"
	"time"

	"github.com/bsv-blockchain/ringselect/ulogger"
	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/bsv-blockchain/ringselect"

type Options func(s *TraceOptions)

type TraceOptions struct {
	ParentStat *gocore.Stat
	Histogram  prometheus.Histogram
	Counter    prometheus.Counter
	Logger     ulogger.Logger
	LogMessage string
	LogArgs    []interface{}
	Attributes []attribute.KeyValue
}

func WithParentStat(stat *gocore.Stat) Options {
	return func(s *TraceOptions) {
		s.ParentStat = stat
	}
}

// WithHistogram sets the prometheus histogram to be observed when the span is finished.
func WithHistogram(histogram prometheus.Histogram) Options {
	return func(s *TraceOptions) {
		s.Histogram = histogram
	}
}

// WithCounter sets the prometheus counter to be incremented when the span is finished.
func WithCounter(counter prometheus.Counter) Options {
	return func(s *TraceOptions) {
		s.Counter = counter
	}
}

// WithLogMessage sets the logger and message used when the span starts and finishes.
// The message is formatted with fmt.Sprintf and logged at DEBUG level.
func WithLogMessage(logger ulogger.Logger, format string, args ...interface{}) Options {
	return func(s *TraceOptions) {
		s.Logger = logger
		s.LogMessage = format
		s.LogArgs = args
	}
}

// WithAttributes adds attributes to the span.
func WithAttributes(attrs ...attribute.KeyValue) Options {
	return func(s *TraceOptions) {
		s.Attributes = append(s.Attributes, attrs...)
	}
}

// StartTracing starts a new span with the given name and returns a context with the span and a function to finish the span.
// The first non-nil error passed to the finish function is recorded on the span.
func StartTracing(ctx context.Context, name string, setOptions ...Options) (context.Context, *gocore.Stat, func(...error)) {
	options := &TraceOptions{}
	for _, opt := range setOptions {
		opt(options)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(options.Attributes...))

	var stat *gocore.Stat
	if options.ParentStat != nil {
		stat = options.ParentStat.NewStat(name)
	} else {
		stat = gocore.NewStat(name)
	}

	start := time.Now()

	if options.Logger != nil && options.LogMessage != "" {
		options.Logger.Debugf(options.LogMessage, options.LogArgs...)
	}

	return ctx, stat, func(errs ...error) {
		for _, err := range errs {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())

				break
			}
		}

		span.End()
		stat.AddTime(start)

		if options.Histogram != nil {
			options.Histogram.Observe(float64(time.Since(start).Microseconds()) / 1_000_000)
		}

		if options.Counter != nil {
			options.Counter.Inc()
		}

		if options.Logger != nil && options.LogMessage != "" {
			done := fmt.Sprintf(" DONE in %s", time.Since(start))
			options.Logger.Debugf(options.LogMessage+done, options.LogArgs...)
		}
	}
}
